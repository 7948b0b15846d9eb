package skin

import "context"

type Service struct {
	repo          Repository
	defaultSkinID int64
}

// NewService creates a skin service. defaultSkinID is shown for users
// without an equipped skin; zero means no default row.
func NewService(repo Repository, defaultSkinID int64) *Service {
	return &Service{repo: repo, defaultSkinID: defaultSkinID}
}

func (s *Service) List(ctx context.Context) ([]Skin, error) {
	skins, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if skins == nil {
		skins = []Skin{}
	}
	return skins, nil
}

// GetEquippedSkinOrDefault returns the user's equipped skin, else the
// configured default skin, else an empty default placeholder.
func (s *Service) GetEquippedSkinOrDefault(ctx context.Context, userID string) (Equipped, error) {
	equipped, err := s.repo.GetEquipped(ctx, userID)
	if err != nil {
		return Equipped{}, err
	}
	if equipped != nil {
		return Equipped{SkinID: equipped.ID, Name: equipped.Name, Type: equipped.Type}, nil
	}

	if s.defaultSkinID != 0 {
		def, err := s.repo.Get(ctx, s.defaultSkinID)
		if err != nil {
			return Equipped{}, err
		}
		if def != nil {
			return Equipped{SkinID: def.ID, Name: def.Name, Type: def.Type, IsDefault: true}, nil
		}
	}
	return Equipped{Type: TypeDuck, IsDefault: true}, nil
}
