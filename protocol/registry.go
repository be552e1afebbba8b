package protocol

import (
	"github.com/seaglass-games/ronet/packet"
)

// NewRegistry builds a packet registry covering the login, character
// and map server conversations.
func NewRegistry() *packet.Registry {
	r := packet.NewRegistry()

	// Login server.
	r.Register(0x0064, LoginServerLoginPacket{})
	r.Register(0x0AC4, LoginServerLoginSuccessPacket{})
	r.Register(0x0081, LoginFailedPacket{})
	r.Register(0x083E, LoginFailedPacket2{})
	r.Register(0x0200, LoginServerKeepalivePacket{}, packet.Ping())
	r.Register(0x0840, MapServerUnavailablePacket{})

	// Character server.
	r.Register(0x0065, CharacterServerLoginPacket{})
	r.Register(0x082D, CharacterServerLoginSuccessPacket{})
	r.Register(0x006B, CharacterSlotInfoPacket{})
	r.Register(0x0B18, InventoryExpansionInfoPacket{})
	r.Register(0x0A39, CreateCharacterPacket{})
	r.Register(0x0B6F, CreateCharacterSuccessPacket{})
	r.Register(0x006E, CharacterCreationFailedPacket{})
	r.Register(0x09A1, RequestCharacterListPacket{})
	r.Register(0x0B72, RequestCharacterListSuccessPacket{})
	r.Register(0x01FB, DeleteCharacterPacket{})
	r.Register(0x0070, CharacterDeletionFailedPacket{})
	r.Register(0x006F, CharacterDeletionSuccessPacket{})
	r.Register(0x0066, SelectCharacterPacket{})
	r.Register(0x006C, CharacterSelectionFailedPacket{})
	r.Register(0x0AC5, CharacterSelectionSuccessPacket{})
	r.Register(0x08D4, SwitchCharacterSlotPacket{})
	r.Register(0x0B70, SwitchCharacterSlotResponsePacket{})
	r.Register(0x0187, CharacterServerKeepalivePacket{}, packet.Ping())

	// Map server session.
	r.Register(0x0436, MapServerLoginPacket{})
	r.Register(0x02EB, MapServerLoginSuccessPacket{})
	r.Register(0x0283, MapServerPlayerIdPacket{})
	r.Register(0x007D, MapLoadedPacket{})
	r.Register(0x007F, ServerTickPacket{}, packet.Ping())
	r.Register(0x0360, RequestServerTickPacket{}, packet.Ping())
	r.Register(0x0091, ChangeMapPacket{})
	r.Register(0x0192, ChangeMapCellPacket{})
	r.Register(0x099B, MapTypePacket{})
	r.Register(0x0140, RequestWarpToMapPacket{})
	r.Register(0x0881, RequestPlayerMovePacket{})
	r.Register(0x0087, PlayerMovePacket{})
	r.Register(0x0086, EntityMovePacket{})
	r.Register(0x0088, EntityStopMovePacket{})
	r.Register(0x0437, RequestActionPacket{})
	r.Register(0x0139, RequestPlayerAttackFailedPacket{})
	r.Register(0x00B2, RestartPacket{})
	r.Register(0x00B3, RestartResponsePacket{})
	r.Register(0x018B, DisconnectResponsePacket{})

	// Entities.
	r.Register(0x09FD, MovingEntityAppearedPacket{})
	r.Register(0x09FE, EntityAppearedPacket{})
	r.Register(0x09FF, EntityAppeared2Packet{})
	r.Register(0x0080, EntityDisappearedPacket{})
	r.Register(0x0368, RequestDetailsPacket{})
	r.Register(0x0A30, RequestPlayerDetailsSuccessPacket{})
	r.Register(0x0ADF, RequestEntityDetailsSuccessPacket{})
	r.Register(0x01D7, SpriteChangePacket{})
	r.Register(0x0229, StateChangePacket{})
	r.Register(0x0977, UpdateEntityHealthPointsPacket{})
	r.Register(0x08C8, DamagePacket{})
	r.Register(0x00C0, DisplayEmotionPacket{})
	r.Register(0x019B, VisualEffectPacket{})
	r.Register(0x01F3, DisplaySpecialEffectPacket{})

	// Chat.
	r.Register(0x00F3, GlobalMessagePacket{})
	r.Register(0x008E, ServerMessagePacket{})
	r.Register(0x009A, BroadcastMessagePacket{})
	r.Register(0x01C3, Broadcast2MessagePacket{})
	r.Register(0x008D, OverheadMessagePacket{})
	r.Register(0x02C1, EntityMessagePacket{})

	// Inventory and equipment.
	r.Register(0x0B08, InventoryStartPacket{})
	r.Register(0x0B0B, InventoryEndPacket{})
	r.Register(0x0B09, RegularItemListPacket{})
	r.Register(0x0B39, EquippableItemListPacket{})
	r.Register(0x0A9B, EquippableSwitchItemListPacket{})
	r.Register(0x0B41, ItemPickupPacket{})
	r.Register(0x07FA, RemoveItemFromInventoryPacket{})
	r.Register(0x0ADE, CriticalWeightUpdatePacket{})
	r.Register(0x0998, RequestEquipItemPacket{})
	r.Register(0x0999, RequestEquipItemStatusPacket{})
	r.Register(0x00AB, RequestUnequipItemPacket{})
	r.Register(0x099A, RequestUnequipItemStatusPacket{})

	// Skills and status effects.
	r.Register(0x010F, UpdateSkillTreePacket{})
	r.Register(0x0B20, UpdateHotkeysPacket{})
	r.Register(0x0438, UseSkillAtIdPacket{})
	r.Register(0x0AF4, UseSkillOnGroundPacket{})
	r.Register(0x0B10, StartUseSkillPacket{})
	r.Register(0x0B11, EndUseSkillPacket{})
	r.Register(0x07FB, UseSkillSuccessPacket{})
	r.Register(0x0110, ToUseSkillSuccessPacket{})
	r.Register(0x09CA, NotifySkillUnitPacket{})
	r.Register(0x0117, NotifyGroundSkillPacket{})
	r.Register(0x0120, SkillUnitDisappearPacket{})
	r.Register(0x043D, DisplaySkillCooldownPacket{})
	r.Register(0x01DE, DisplaySkillEffectAndDamagePacket{})
	r.Register(0x0A27, DisplayPlayerHealEffectPacket{})
	r.Register(0x09CB, DisplaySkillEffectNoDamagePacket{})
	r.Register(0x0983, StatusChangePacket{})
	r.Register(0x0196, StatusChangeSequencePacket{})

	// Character statistics.
	r.Register(0x00B0, UpdateStatusPacket{})
	r.Register(0x0141, UpdateStatus1Packet{})
	r.Register(0x0ACB, UpdateStatus2Packet{})
	r.Register(0x00BE, UpdateStatus3Packet{})
	r.Register(0x00BD, InitialStatusPacket{})
	r.Register(0x013A, UpdateAttackRangePacket{})
	r.Register(0x0ACC, DisplayGainedExperiencePacket{})

	// NPC dialogs.
	r.Register(0x00B4, NpcDialogPacket{})
	r.Register(0x00B5, NextButtonPacket{})
	r.Register(0x00B6, CloseButtonPacket{})
	r.Register(0x00B7, DialogMenuPacket{})
	r.Register(0x0090, StartDialogPacket{})
	r.Register(0x00B9, NextDialogPacket{})
	r.Register(0x0146, CloseDialogPacket{})
	r.Register(0x00B8, ChooseDialogOptionPacket{})

	// Interface state.
	r.Register(0x02C9, UpdatePartyInvitationStatePacket{})
	r.Register(0x02DA, UpdateShowEquipPacket{})
	r.Register(0x02D9, UpdateConfigurationPacket{})
	r.Register(0x08E2, NavigateToMonsterPacket{})
	r.Register(0x0144, MarkMinimapPositionPacket{})
	r.Register(0x01B3, DisplayImagePacket{})
	r.Register(0x09E7, NewMailStatusPacket{})
	r.Register(0x0A24, AchievementUpdatePacket{})
	r.Register(0x0A23, AchievementListPacket{})

	// Quests.
	r.Register(0x09F9, QuestNotification1Packet{})
	r.Register(0x08FE, HuntingQuestNotificationPacket{})
	r.Register(0x09FA, HuntingQuestUpdateObjectivePacket{})
	r.Register(0x02B4, QuestRemovedPacket{})
	r.Register(0x09F8, QuestListPacket{})
	r.Register(0x0446, QuestEffectPacket{})

	// Friends, parties and clans.
	r.Register(0x0202, AddFriendPacket{})
	r.Register(0x0203, RemoveFriendPacket{})
	r.Register(0x020A, NotifyFriendRemovedPacket{})
	r.Register(0x0201, FriendListPacket{})
	r.Register(0x0206, FriendOnlineStatusPacket{})
	r.Register(0x0207, FriendRequestPacket{})
	r.Register(0x0208, FriendRequestResponsePacket{})
	r.Register(0x0209, FriendRequestResultPacket{})
	r.Register(0x02C6, PartyInvitePacket{})
	r.Register(0x0B8D, ReputationPacket{})
	r.Register(0x098A, ClanInfoPacket{})
	r.Register(0x0988, ClanOnlineCountPacket{})

	return r
}
