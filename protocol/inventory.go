package protocol

// ItemOptions is one random option roll on an equippable item.
type ItemOptions struct {
	Index     uint16
	Value     uint16
	Parameter uint8
}

// RegularItemInformation describes a stackable inventory item.
type RegularItemInformation struct {
	Index              ItemIndex
	ItemId             ItemId
	ItemType           uint8
	Amount             uint16
	WearState          uint32
	Slot               [4]uint32
	HireExpirationDate int32
	Flags              uint8
}

// EquippableItemInformation describes an equippable inventory item.
type EquippableItemInformation struct {
	Index              ItemIndex
	ItemId             ItemId
	ItemType           uint8
	EquipPosition      EquipPosition
	EquippedPosition   EquipPosition
	Slot               [4]uint32
	HireExpirationDate int32
	BindOnEquipType    uint16
	ItemSpriteNumber   uint16
	OptionCount        uint8
	OptionData         [5]ItemOptions
	RefinementLevel    uint8
	EnchantmentLevel   uint8
	Flags              uint8
}

// EquippableSwitchItemInformation is one entry of the equip switch
// list.
type EquippableSwitchItemInformation struct {
	Index    ItemIndex
	Position uint32
}

// InventoryStartPacket opens an inventory transfer.
type InventoryStartPacket struct {
	PacketLength  uint16 `ro:"packet_length"`
	InventoryType uint8
	InventoryName string `ro:"length_from:packet_length-5"`
}

// InventoryEndPacket closes an inventory transfer.
type InventoryEndPacket struct {
	InventoryType uint8
	Flag          uint8
}

// RegularItemListPacket lists the stackable items of an inventory.
type RegularItemListPacket struct {
	PacketLength  uint16                   `ro:"packet_length"`
	InventoryType uint8
	Items         []RegularItemInformation `ro:"repeat_rest"`
}

// EquippableItemListPacket lists the equippable items of an inventory.
type EquippableItemListPacket struct {
	PacketLength  uint16                      `ro:"packet_length"`
	InventoryType uint8
	Items         []EquippableItemInformation `ro:"repeat_rest"`
}

// EquippableSwitchItemListPacket lists the items on the equip switch.
type EquippableSwitchItemListPacket struct {
	PacketLength uint16                            `ro:"packet_length"`
	Items        []EquippableSwitchItemInformation `ro:"repeat_rest"`
}

// ItemPickupPacket adds a picked up item to the inventory.
type ItemPickupPacket struct {
	Index              ItemIndex
	Count              uint16
	ItemId             ItemId
	IsIdentified       uint8
	IsBroken           uint8
	Cards              [4]uint32
	EquipPosition      EquipPosition
	ItemType           uint8
	Result             uint8
	HireExpirationDate uint32
	BindOnEquipType    uint16
	OptionData         [5]ItemOptions
	Favorite           uint8
	Look               uint16
	RefinementLevel    uint8
	EnchantmentLevel   uint8
}

// RemoveItemFromInventoryPacket removes an item stack from the
// inventory.
type RemoveItemFromInventoryPacket struct {
	RemoveReason RemoveItemReason
	Index        uint16
	Amount       uint16
}

// CriticalWeightUpdatePacket toggles the overweight warning.
type CriticalWeightUpdatePacket struct {
	Weight uint32
}

// RequestEquipItemPacket asks to equip an inventory item.
type RequestEquipItemPacket struct {
	InventoryIndex ItemIndex
	EquipPosition  EquipPosition
}

// RequestEquipItemStatusPacket reports the result of an equip request.
type RequestEquipItemStatusPacket struct {
	InventoryIndex   ItemIndex
	EquippedPosition EquipPosition
	ViewId           uint16
	Result           RequestEquipItemStatus
}

// RequestUnequipItemPacket asks to unequip an item.
type RequestUnequipItemPacket struct {
	InventoryIndex ItemIndex
}

// RequestUnequipItemStatusPacket reports the result of an unequip
// request.
type RequestUnequipItemStatusPacket struct {
	InventoryIndex   ItemIndex
	EquippedPosition EquipPosition
	Result           RequestUnequipItemStatus
}
