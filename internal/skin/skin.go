package skin

type Type string

const (
	TypeDuck       Type = "DUCK"
	TypeBackground Type = "BACKGROUND"
)

// Skin is a cosmetic users can equip. Skins are seeded reference data.
type Skin struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Type            Type   `json:"type"`
	Description     string `json:"description"`
	UnlockCondition string `json:"unlock_condition"`
}

// Equipped is the skin shown for a user.
type Equipped struct {
	SkinID    int64  `json:"skin_id"`
	Name      string `json:"name"`
	Type      Type   `json:"type"`
	IsDefault bool   `json:"is_default"`
}
