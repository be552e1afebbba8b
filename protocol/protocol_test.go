package protocol

import (
	"bytes"
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/seaglass-games/ronet/errors"
	"github.com/seaglass-games/ronet/packet"
	"github.com/seaglass-games/ronet/wire"
)

func TestLoginRequest_KnownBytes(t *testing.T) {
	r := NewRegistry()

	data, err := r.Encode(&LoginServerLoginPacket{
		Version:    [4]uint8{0, 0, 0, 0},
		Name:       "seaglass",
		Password:   "hunter2",
		ClientType: 2,
	})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := make([]byte, 0, 55)
	want = append(want, 0x64, 0x00)
	want = append(want, 0, 0, 0, 0)
	name := make([]byte, 24)
	copy(name, "seaglass")
	want = append(want, name...)
	password := make([]byte, 24)
	copy(password, "hunter2")
	want = append(want, password...)
	want = append(want, 2)

	if !bytes.Equal(data, want) {
		t.Errorf("encoded bytes\n got %#v\nwant %#v", data, want)
	}

	// The zero padding of the credential regions must not survive
	// decoding.
	var back LoginServerLoginPacket
	if err := r.DecodeExpect(wire.NewCursor(data), &back); err != nil {
		t.Fatalf("DecodeExpect failed: %v", err)
	}
	if back.Name != "seaglass" || back.Password != "hunter2" {
		t.Errorf("credentials: got %q / %q", back.Name, back.Password)
	}
}

func TestLoginSuccess_RoundTrip(t *testing.T) {
	r := NewRegistry()

	pkt := LoginServerLoginSuccessPacket{
		LoginId1:  0x11223344,
		AccountId: 2000001,
		LoginId2:  0x55667788,
		Sex:       SexMale,
		CharacterServers: []CharacterServerInformation{
			{
				ServerIP:   ServerAddress{192, 168, 1, 20},
				ServerPort: 6121,
				ServerName: "Niflheim",
				UserCount:  812,
			},
			{
				ServerIP:   ServerAddress{192, 168, 1, 21},
				ServerPort: 6122,
				ServerName: "Valhalla",
				UserCount:  64,
			},
		},
	}

	data, err := r.Encode(&pkt)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if int(pkt.PacketLength) != len(data) {
		t.Errorf("patched length %d, wire size %d", pkt.PacketLength, len(data))
	}

	decoded, err := r.DecodeNext(wire.NewCursor(data))
	if err != nil {
		t.Fatalf("DecodeNext failed: %v", err)
	}
	back, ok := decoded.(*LoginServerLoginSuccessPacket)
	if !ok {
		t.Fatalf("DecodeNext returned %T", decoded)
	}
	if !reflect.DeepEqual(*back, pkt) {
		t.Errorf("round trip\n got %+v\nwant %+v", *back, pkt)
	}
}

func TestServerMessage_Decode(t *testing.T) {
	r := NewRegistry()

	data := []byte{
		0x8E, 0x00,
		0x0A, 0x00, // total 10 = 2 header + 2 length + 6 text
		'w', 'e', 'l', 'c', 'o', 'm',
	}
	decoded, err := r.DecodeNext(wire.NewCursor(data))
	if err != nil {
		t.Fatalf("DecodeNext failed: %v", err)
	}
	msg, ok := decoded.(*ServerMessagePacket)
	if !ok {
		t.Fatalf("DecodeNext returned %T", decoded)
	}
	if msg.Message != "welcom" {
		t.Errorf("message: got %q", msg.Message)
	}
}

func TestCharacterList_RoundTrip(t *testing.T) {
	r := NewRegistry()

	pkt := RequestCharacterListSuccessPacket{
		Characters: []CharacterInformation{
			{
				CharacterId:  150000,
				Experience:   123456789,
				JobLevel:     42,
				HealthPoints: 5200,
				Name:         "Vending Machine",
				MapName:      "prontera",
				Sex:          SexFemale,
			},
			{
				CharacterId: 150001,
				Name:        "Mule",
				MapName:     "morocc",
				Sex:         SexMale,
			},
		},
	}

	data, err := r.Encode(&pkt)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := r.DecodeNext(wire.NewCursor(data))
	if err != nil {
		t.Fatalf("DecodeNext failed: %v", err)
	}
	back, ok := decoded.(*RequestCharacterListSuccessPacket)
	if !ok {
		t.Fatalf("DecodeNext returned %T", decoded)
	}
	if !reflect.DeepEqual(*back, pkt) {
		t.Errorf("round trip\n got %+v\nwant %+v", *back, pkt)
	}
}

func TestQuestList_RoundTrip(t *testing.T) {
	r := NewRegistry()

	pkt := QuestListPacket{
		QuestCount: 1,
		Quests: []Quest{
			{
				QuestId:        7127,
				Active:         1,
				RemainingTime:  0,
				ExpireTime:     1700000000,
				ObjectiveCount: 2,
				ObjectiveDetails: []QuestDetails{
					{MobId: 1002, TotalCount: 10, MobName: "Poring"},
					{MobId: 1113, TotalCount: 5, MobName: "Drops"},
				},
			},
		},
	}

	data, err := r.Encode(&pkt)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := r.DecodeNext(wire.NewCursor(data))
	if err != nil {
		t.Fatalf("DecodeNext failed: %v", err)
	}
	back, ok := decoded.(*QuestListPacket)
	if !ok {
		t.Fatalf("DecodeNext returned %T", decoded)
	}
	if !reflect.DeepEqual(*back, pkt) {
		t.Errorf("round trip\n got %+v\nwant %+v", *back, pkt)
	}
}

func TestQuestList_CountMismatch(t *testing.T) {
	r := NewRegistry()

	pkt := QuestListPacket{
		QuestCount: 2,
		Quests:     []Quest{{QuestId: 1}},
	}
	_, err := r.Encode(&pkt)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindInvalidData}) {
		t.Fatalf("expected invalid_data, got: %v", err)
	}
}

func TestKeepalivePackets(t *testing.T) {
	r := NewRegistry()

	for _, pkt := range []any{
		&LoginServerKeepalivePacket{},
		&CharacterServerKeepalivePacket{},
		&ServerTickPacket{},
		&RequestServerTickPacket{},
	} {
		if !r.IsPing(pkt) {
			t.Errorf("%T should be keepalive traffic", pkt)
		}
	}
	if r.IsPing(&MapLoadedPacket{}) {
		t.Error("MapLoadedPacket is not keepalive traffic")
	}
}

func TestUnknownTag_Passthrough(t *testing.T) {
	r := NewRegistry()

	data := []byte{0xAB, 0xCD, 0x01, 0x02, 0x03}
	decoded, err := r.DecodeNext(wire.NewCursor(data))
	if err != nil {
		t.Fatalf("DecodeNext failed: %v", err)
	}
	unknown, ok := decoded.(*packet.Unknown)
	if !ok {
		t.Fatalf("DecodeNext returned %T", decoded)
	}
	if unknown.Tag != 0xCDAB {
		t.Errorf("tag: got 0x%04X", unknown.Tag)
	}
	if !bytes.Equal(unknown.Payload, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("payload: got %v", unknown.Payload)
	}
}
