package protocol

import (
	"github.com/seaglass-games/ronet/errors"
	"github.com/seaglass-games/ronet/wire"
)

// StatusKind selects which character value a status update packet
// carries. The payload width depends on the kind, so StatusUpdate has
// a hand-written wire format.
type StatusKind uint16

const (
	StatusMovementSpeed         StatusKind = 0
	StatusBaseExperience        StatusKind = 1
	StatusJobExperience         StatusKind = 2
	StatusKarma                 StatusKind = 3
	StatusManner                StatusKind = 4
	StatusHealthPoints          StatusKind = 5
	StatusMaximumHealthPoints   StatusKind = 6
	StatusSpellPoints           StatusKind = 7
	StatusMaximumSpellPoints    StatusKind = 8
	StatusStatusPoints          StatusKind = 9
	StatusBaseLevel             StatusKind = 11
	StatusSkillPoints           StatusKind = 12
	StatusStrength              StatusKind = 13
	StatusAgility               StatusKind = 14
	StatusVitality              StatusKind = 15
	StatusIntelligence          StatusKind = 16
	StatusDexterity             StatusKind = 17
	StatusLuck                  StatusKind = 18
	StatusZeny                  StatusKind = 20
	StatusNextBaseExperience    StatusKind = 22
	StatusNextJobExperience     StatusKind = 23
	StatusWeight                StatusKind = 24
	StatusMaximumWeight         StatusKind = 25
	StatusStrengthCost          StatusKind = 32
	StatusAgilityCost           StatusKind = 33
	StatusVitalityCost          StatusKind = 34
	StatusIntelligenceCost      StatusKind = 35
	StatusDexterityCost         StatusKind = 36
	StatusLuckCost              StatusKind = 37
	StatusAttack1               StatusKind = 41
	StatusAttack2               StatusKind = 42
	StatusMagicAttack1          StatusKind = 43
	StatusMagicAttack2          StatusKind = 44
	StatusDefense1              StatusKind = 45
	StatusDefense2              StatusKind = 46
	StatusMagicDefense1         StatusKind = 47
	StatusMagicDefense2         StatusKind = 48
	StatusHit                   StatusKind = 49
	StatusFlee1                 StatusKind = 50
	StatusFlee2                 StatusKind = 51
	StatusCritical              StatusKind = 52
	StatusAttackSpeed           StatusKind = 53
	StatusJobLevel              StatusKind = 55
	StatusCartInfo              StatusKind = 99
	StatusPower                 StatusKind = 219
	StatusStamina               StatusKind = 220
	StatusWisdom                StatusKind = 221
	StatusSpell                 StatusKind = 222
	StatusConcentration         StatusKind = 223
	StatusCreativity            StatusKind = 224
	StatusPhysicalAttack        StatusKind = 225
	StatusSpellMagicAttack      StatusKind = 226
	StatusResistance            StatusKind = 227
	StatusMagicResistance       StatusKind = 228
	StatusHealingPlus           StatusKind = 229
	StatusCriticalDamageRate    StatusKind = 230
	StatusTraitPoints           StatusKind = 231
	StatusActivityPoints        StatusKind = 232
	StatusMaximumActivityPoints StatusKind = 233
	StatusPowerCost             StatusKind = 247
	StatusStaminaCost           StatusKind = 248
	StatusWisdomCost            StatusKind = 249
	StatusSpellCost             StatusKind = 250
	StatusConcentrationCost     StatusKind = 251
	StatusCreativityCost        StatusKind = 252
)

// statusLayouts gives the byte widths of the payload values following
// each kind, in wire order.
var statusLayouts = map[StatusKind][]int{
	StatusMovementSpeed:         {4},
	StatusBaseExperience:        {8},
	StatusJobExperience:         {8},
	StatusKarma:                 {4},
	StatusManner:                {4},
	StatusHealthPoints:          {4},
	StatusMaximumHealthPoints:   {4},
	StatusSpellPoints:           {4},
	StatusMaximumSpellPoints:    {4},
	StatusStatusPoints:          {4},
	StatusBaseLevel:             {4},
	StatusSkillPoints:           {4},
	StatusStrength:              {4, 4},
	StatusAgility:               {4, 4},
	StatusVitality:              {4, 4},
	StatusIntelligence:          {4, 4},
	StatusDexterity:             {4, 4},
	StatusLuck:                  {4, 4},
	StatusZeny:                  {4},
	StatusNextBaseExperience:    {8},
	StatusNextJobExperience:     {8},
	StatusWeight:                {4},
	StatusMaximumWeight:         {4},
	StatusStrengthCost:          {1},
	StatusAgilityCost:           {1},
	StatusVitalityCost:          {1},
	StatusIntelligenceCost:      {1},
	StatusDexterityCost:         {1},
	StatusLuckCost:              {1},
	StatusAttack1:               {4},
	StatusAttack2:               {4},
	StatusMagicAttack1:          {4},
	StatusMagicAttack2:          {4},
	StatusDefense1:              {4},
	StatusDefense2:              {4},
	StatusMagicDefense1:         {4},
	StatusMagicDefense2:         {4},
	StatusHit:                   {4},
	StatusFlee1:                 {4},
	StatusFlee2:                 {4},
	StatusCritical:              {4},
	StatusAttackSpeed:           {4},
	StatusJobLevel:              {4},
	StatusCartInfo:              {2, 4, 4},
	StatusPower:                 {4, 4},
	StatusStamina:               {4, 4},
	StatusWisdom:                {4, 4},
	StatusSpell:                 {4, 4},
	StatusConcentration:         {4, 4},
	StatusCreativity:            {4, 4},
	StatusPhysicalAttack:        {4},
	StatusSpellMagicAttack:      {4},
	StatusResistance:            {4},
	StatusMagicResistance:       {4},
	StatusHealingPlus:           {4},
	StatusCriticalDamageRate:    {4},
	StatusTraitPoints:           {4},
	StatusActivityPoints:        {4},
	StatusMaximumActivityPoints: {4},
	StatusPowerCost:             {1},
	StatusStaminaCost:           {1},
	StatusWisdomCost:            {1},
	StatusSpellCost:             {1},
	StatusConcentrationCost:     {1},
	StatusCreativityCost:        {1},
}

// StatusUpdate is one server-pushed character value. Value holds the
// primary payload. For base stats, Values[1] is the equipment bonus;
// for cart info, Value is the item count, Values[1] the current weight
// and Values[2] the capacity.
type StatusUpdate struct {
	Kind   StatusKind
	Values [3]uint64
}

func (s *StatusUpdate) Value() uint64 {
	return s.Values[0]
}

func (s *StatusUpdate) MarshalWire(w *wire.Writer) error {
	layout, ok := statusLayouts[s.Kind]
	if !ok {
		return errors.UnknownTag(errors.PhaseEncode, nil, uint64(s.Kind), "StatusKind")
	}
	w.WriteU16(uint16(s.Kind))
	for i, width := range layout {
		v := s.Values[i]
		switch width {
		case 1:
			w.WriteU8(uint8(v))
		case 2:
			w.WriteU16(uint16(v))
		case 4:
			w.WriteU32(uint32(v))
		default:
			w.WriteU64(v)
		}
	}
	return nil
}

func (s *StatusUpdate) UnmarshalWire(c *wire.Cursor) error {
	kind, err := c.ReadU16()
	if err != nil {
		return err
	}
	layout, ok := statusLayouts[StatusKind(kind)]
	if !ok {
		return errors.UnknownTag(errors.PhaseDecode, nil, uint64(kind), "StatusKind")
	}

	s.Kind = StatusKind(kind)
	s.Values = [3]uint64{}
	for i, width := range layout {
		var v uint64
		switch width {
		case 1:
			b, err := c.ReadU8()
			if err != nil {
				return err
			}
			v = uint64(b)
		case 2:
			u, err := c.ReadU16()
			if err != nil {
				return err
			}
			v = uint64(u)
		case 4:
			u, err := c.ReadU32()
			if err != nil {
				return err
			}
			v = uint64(u)
		default:
			u, err := c.ReadU64()
			if err != nil {
				return err
			}
			v = u
		}
		s.Values[i] = v
	}
	return nil
}
