package admin

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Stats es de solo lectura; cualquier falla parcial se propaga entera
// (sin resultados parciales).
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	st, err := s.repo.Collect(ctx)
	if err != nil {
		return Stats{}, err
	}
	if st.PetsByType == nil {
		st.PetsByType = []TypeCount{}
	}
	return st, nil
}
