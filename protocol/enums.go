package protocol

import (
	"github.com/seaglass-games/ronet/codec"
)

// Sex of a character or account. The server variant shows up in
// account-level packets only.
type Sex uint8

const (
	SexFemale Sex = iota
	SexMale
	SexBoth
	SexServer
)

// LoginFailedReason is carried by the short login rejection packet.
type LoginFailedReason uint8

const (
	LoginFailedServerClosed    LoginFailedReason = 1
	LoginFailedAlreadyLoggedIn LoginFailedReason = 2
	LoginFailedAlreadyOnline   LoginFailedReason = 8
)

// LoginFailedReason2 is carried by the extended login rejection
// packet.
type LoginFailedReason2 uint8

const (
	LoginFailed2UnregisteredId LoginFailedReason2 = iota
	LoginFailed2IncorrectPassword
	LoginFailed2IdExpired
	LoginFailed2RejectedFromServer
	LoginFailed2BlockedByGMTeam
	LoginFailed2GameOutdated
	LoginFailed2LoginProhibitedUntil
	LoginFailed2ServerFull
	LoginFailed2CompanyAccountLimitReached
)

type CharacterSelectionFailedReason uint8

const (
	CharacterSelectionRejectedFromServer CharacterSelectionFailedReason = 0
)

type CharacterCreationFailedReason uint8

const (
	CharacterCreationNameAlreadyUsed CharacterCreationFailedReason = 0
	CharacterCreationNotOldEnough    CharacterCreationFailedReason = 1
	CharacterCreationSlotNotAllowed  CharacterCreationFailedReason = 3
	CharacterCreationFailed          CharacterCreationFailedReason = 255
)

type CharacterDeletionFailedReason uint8

const (
	CharacterDeletionNotAllowed CharacterDeletionFailedReason = iota
	CharacterDeletionCharacterNotFound
	CharacterDeletionNotEligible
)

type SwitchCharacterSlotResponseStatus uint16

const (
	SwitchCharacterSlotSuccess SwitchCharacterSlotResponseStatus = iota
	SwitchCharacterSlotError
)

// Action requested on an entity: attacks, sitting, item pickup.
type Action uint8

const (
	ActionAttack Action = iota
	ActionPickUpItem
	ActionSitDown
	ActionStandUp
	ActionContinuousAttack Action = 7
	ActionTouchSkill       Action = 12
)

type DisappearanceReason uint8

const (
	DisappearanceOutOfSight DisappearanceReason = iota
	DisappearanceDied
	DisappearanceLoggedOut
	DisappearanceTeleported
	DisappearanceTrickDead
)

type SkillType uint32

const (
	SkillPassive  SkillType = 0
	SkillAttack   SkillType = 1
	SkillGround   SkillType = 2
	SkillSelfCast SkillType = 4
	SkillSupport  SkillType = 16
	SkillTrap     SkillType = 32
)

type HealType uint16

const (
	HealHealth      HealType = 5
	HealSpellPoints HealType = 7
)

// EquipPosition is a bit set of equipment slots. Only the
// combinations the server actually sends are declared.
type EquipPosition uint32

const (
	EquipNone                     EquipPosition = 0
	EquipHeadLower                EquipPosition = 1
	EquipRightHand                EquipPosition = 2
	EquipGarment                  EquipPosition = 4
	EquipLeftAccessory            EquipPosition = 8
	EquipArmor                    EquipPosition = 16
	EquipLeftHand                 EquipPosition = 32
	EquipLeftRightHand            EquipPosition = 34
	EquipShoes                    EquipPosition = 64
	EquipRightAccessory           EquipPosition = 128
	EquipLeftRightAccessory       EquipPosition = 136
	EquipHeadTop                  EquipPosition = 256
	EquipHeadMiddle               EquipPosition = 512
	EquipCostumeHeadTop           EquipPosition = 1024
	EquipCostumeHeadMiddle        EquipPosition = 2048
	EquipCostumeHeadLower         EquipPosition = 4196
	EquipCostumeGarment           EquipPosition = 8192
	EquipAmmo                     EquipPosition = 32768
	EquipShadowArmor              EquipPosition = 65536
	EquipShadowWeapon             EquipPosition = 131072
	EquipShadowShield             EquipPosition = 262144
	EquipShadowShoes              EquipPosition = 524288
	EquipShadowRightAccessory     EquipPosition = 1048576
	EquipShadowLeftAccessory      EquipPosition = 2097152
	EquipShadowLeftRightAccessory EquipPosition = 3145728
)

type MarkerType uint32

const (
	MarkerDisplayFor15Seconds MarkerType = iota
	MarkerDisplayUntilLeave
	MarkerRemoveMark
)

type VisualEffect uint32

const (
	VisualEffectBaseLevelUp VisualEffect = iota
	VisualEffectJobLevelUp
	VisualEffectRefineFailure
	VisualEffectRefineSuccess
	VisualEffectGameOver
	VisualEffectPharmacySuccess
	VisualEffectPharmacyFailure
	VisualEffectBaseLevelUpSuperNovice
	VisualEffectJobLevelUpSuperNovice
	VisualEffectBaseLevelUpTaekwon
)

type ExperienceType uint16

const (
	ExperienceBase ExperienceType = 1
	ExperienceJob  ExperienceType = 2
)

type ExperienceSource uint16

const (
	ExperienceSourceRegular ExperienceSource = iota
	ExperienceSourceQuest
)

type ImageLocation uint8

const (
	ImageBottomLeft ImageLocation = iota
	ImageBottomMiddle
	ImageBottomRight
	ImageMiddleFloating
	ImageMiddleColorless
	ImageClearAll ImageLocation = 255
)

type RemoveItemReason uint16

const (
	RemoveItemNormal RemoveItemReason = iota
	RemoveItemUsedForSkill
	RemoveItemRefineFailed
	RemoveItemMaterialChanged
	RemoveItemMovedToStorage
	RemoveItemMovedToCart
	RemoveItemSold
	RemoveItemConsumedByFourSpiritAnalysis
)

type QuestEffect uint16

const (
	QuestEffectQuest QuestEffect = iota
	QuestEffectQuest2
	QuestEffectJob
	QuestEffectJob2
	QuestEffectEvent
	QuestEffectEvent2
	QuestEffectClickMe
	QuestEffectDailyQuest
	QuestEffectEvent3
	QuestEffectJobQuest
	QuestEffectJumpingPoring
	QuestEffectNone QuestEffect = 9999
)

type QuestColor uint16

const (
	QuestColorYellow QuestColor = iota
	QuestColorOrange
	QuestColorGreen
	QuestColorPurple
)

type RestartType uint8

const (
	RestartRespawn RestartType = iota
	RestartDisconnect
)

type RestartResponseStatus uint8

const (
	RestartResponseNothing RestartResponseStatus = iota
	RestartResponseOk
)

type DisconnectResponseStatus uint16

const (
	DisconnectResponseOk DisconnectResponseStatus = iota
	DisconnectResponseWait10Seconds
)

type OnlineState uint8

const (
	StateOnline OnlineState = iota
	StateOffline
)

type FriendRequestResponse uint32

const (
	FriendRequestReject FriendRequestResponse = iota
	FriendRequestAccept
)

type FriendRequestResult uint16

const (
	FriendRequestAccepted FriendRequestResult = iota
	FriendRequestRejected
	FriendRequestOwnListFull
	FriendRequestOtherListFull
)

type RequestEquipItemStatus uint8

const (
	EquipItemSuccess RequestEquipItemStatus = iota
	EquipItemFailed
	EquipItemFailedLevelRequirement
)

type RequestUnequipItemStatus uint8

const (
	UnequipItemSuccess RequestUnequipItemStatus = iota
	UnequipItemFailed
)

func init() {
	codec.RegisterEnum(Sex(0), map[uint64]string{
		0: "Female",
		1: "Male",
		2: "Both",
		3: "Server",
	})
	codec.RegisterEnum(LoginFailedReason(0), map[uint64]string{
		1: "ServerClosed",
		2: "AlreadyLoggedIn",
		8: "AlreadyOnline",
	})
	codec.RegisterEnum(LoginFailedReason2(0), map[uint64]string{
		0: "UnregisteredId",
		1: "IncorrectPassword",
		2: "IdExpired",
		3: "RejectedFromServer",
		4: "BlockedByGMTeam",
		5: "GameOutdated",
		6: "LoginProhibitedUntil",
		7: "ServerFull",
		8: "CompanyAccountLimitReached",
	})
	codec.RegisterEnum(CharacterSelectionFailedReason(0), map[uint64]string{
		0: "RejectedFromServer",
	})
	codec.RegisterEnum(CharacterCreationFailedReason(0), map[uint64]string{
		0:   "NameAlreadyUsed",
		1:   "NotOldEnough",
		3:   "SlotNotAllowed",
		255: "CreationFailed",
	})
	codec.RegisterEnum(CharacterDeletionFailedReason(0), map[uint64]string{
		0: "NotAllowed",
		1: "CharacterNotFound",
		2: "NotEligible",
	})
	codec.RegisterEnum(SwitchCharacterSlotResponseStatus(0), map[uint64]string{
		0: "Success",
		1: "Error",
	})
	codec.RegisterEnum(Action(0), map[uint64]string{
		0:  "Attack",
		1:  "PickUpItem",
		2:  "SitDown",
		3:  "StandUp",
		7:  "ContinuousAttack",
		12: "TouchSkill",
	})
	codec.RegisterEnum(DisappearanceReason(0), map[uint64]string{
		0: "OutOfSight",
		1: "Died",
		2: "LoggedOut",
		3: "Teleported",
		4: "TrickDead",
	})
	codec.RegisterEnum(SkillType(0), map[uint64]string{
		0:  "Passive",
		1:  "Attack",
		2:  "Ground",
		4:  "SelfCast",
		16: "Support",
		32: "Trap",
	})
	codec.RegisterEnum(HealType(0), map[uint64]string{
		5: "Health",
		7: "SpellPoints",
	})
	codec.RegisterEnum(EquipPosition(0), map[uint64]string{
		0:       "None",
		1:       "HeadLower",
		2:       "RightHand",
		4:       "Garment",
		8:       "LeftAccessory",
		16:      "Armor",
		32:      "LeftHand",
		34:      "LeftRightHand",
		64:      "Shoes",
		128:     "RightAccessory",
		136:     "LeftRightAccessory",
		256:     "HeadTop",
		512:     "HeadMiddle",
		1024:    "CostumeHeadTop",
		2048:    "CostumeHeadMiddle",
		4196:    "CostumeHeadLower",
		8192:    "CostumeGarment",
		32768:   "Ammo",
		65536:   "ShadowArmor",
		131072:  "ShadowWeapon",
		262144:  "ShadowShield",
		524288:  "ShadowShoes",
		1048576: "ShadowRightAccessory",
		2097152: "ShadowLeftAccessory",
		3145728: "ShadowLeftRightAccessory",
	})
	codec.RegisterEnum(MarkerType(0), map[uint64]string{
		0: "DisplayFor15Seconds",
		1: "DisplayUntilLeave",
		2: "RemoveMark",
	})
	codec.RegisterEnum(VisualEffect(0), map[uint64]string{
		0: "BaseLevelUp",
		1: "JobLevelUp",
		2: "RefineFailure",
		3: "RefineSuccess",
		4: "GameOver",
		5: "PharmacySuccess",
		6: "PharmacyFailure",
		7: "BaseLevelUpSuperNovice",
		8: "JobLevelUpSuperNovice",
		9: "BaseLevelUpTaekwon",
	})
	codec.RegisterEnum(ExperienceType(0), map[uint64]string{
		1: "BaseExperience",
		2: "JobExperience",
	})
	codec.RegisterEnum(ExperienceSource(0), map[uint64]string{
		0: "Regular",
		1: "Quest",
	})
	codec.RegisterEnum(ImageLocation(0), map[uint64]string{
		0:   "BottomLeft",
		1:   "BottomMiddle",
		2:   "BottomRight",
		3:   "MiddleFloating",
		4:   "MiddleColorless",
		255: "ClearAll",
	})
	codec.RegisterEnum(RemoveItemReason(0), map[uint64]string{
		0: "Normal",
		1: "ItemUsedForSkill",
		2: "RefineFailed",
		3: "MaterialChanged",
		4: "MovedToStorage",
		5: "MovedToCart",
		6: "ItemSold",
		7: "ConsumedByFourSpiritAnalysis",
	})
	codec.RegisterEnum(QuestEffect(0), map[uint64]string{
		0:    "Quest",
		1:    "Quest2",
		2:    "Job",
		3:    "Job2",
		4:    "Event",
		5:    "Event2",
		6:    "ClickMe",
		7:    "DailyQuest",
		8:    "Event3",
		9:    "JobQuest",
		10:   "JumpingPoring",
		9999: "None",
	})
	codec.RegisterEnum(QuestColor(0), map[uint64]string{
		0: "Yellow",
		1: "Orange",
		2: "Green",
		3: "Purple",
	})
	codec.RegisterEnum(RestartType(0), map[uint64]string{
		0: "Respawn",
		1: "Disconnect",
	})
	codec.RegisterEnum(RestartResponseStatus(0), map[uint64]string{
		0: "Nothing",
		1: "Ok",
	})
	codec.RegisterEnum(DisconnectResponseStatus(0), map[uint64]string{
		0: "Ok",
		1: "Wait10Seconds",
	})
	codec.RegisterEnum(OnlineState(0), map[uint64]string{
		0: "Online",
		1: "Offline",
	})
	codec.RegisterEnum(FriendRequestResponse(0), map[uint64]string{
		0: "Reject",
		1: "Accept",
	})
	codec.RegisterEnum(FriendRequestResult(0), map[uint64]string{
		0: "Accepted",
		1: "Rejected",
		2: "OwnFriendListFull",
		3: "OtherFriendListFull",
	})
	codec.RegisterEnum(RequestEquipItemStatus(0), map[uint64]string{
		0: "Success",
		1: "Failed",
		2: "FailedDueToLevelRequirement",
	})
	codec.RegisterEnum(RequestUnequipItemStatus(0), map[uint64]string{
		0: "Success",
		1: "Failed",
	})
}
