package sitefile

import (
	"fmt"

	"github.com/Silverados/sitenav/internal/domain"
)

// Source loads and maps a site file on every call.
type Source struct {
	loader *Loader
	mapper *Mapper
}

// NewSource creates a source reading path and layering it over base.
func NewSource(path string, base func() *domain.Site) *Source {
	return &Source{
		loader: NewLoader(path),
		mapper: NewMapper(base),
	}
}

// Name identifies the source in snapshots and logs.
func (s *Source) Name() string {
	return "file:" + s.loader.Path()
}

// Load reads the file and returns the mapped document.
func (s *Source) Load() (*domain.Site, error) {
	file, err := s.loader.Load()
	if err != nil {
		return nil, err
	}
	site, err := s.mapper.Map(file)
	if err != nil {
		return nil, fmt.Errorf("failed to map %s: %w", s.loader.Path(), err)
	}
	return site, nil
}
