package serviceImp

import (
	"context"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"msitumum/entities"
	repo "msitumum/pkg/species/repository"
	"msitumum/pkg/species/service"
)

const listKey = "species:all"

// speciesSvc caches the catalog. It changes only through Import, which flushes the cache.
type speciesSvc struct {
	r     repo.SpeciesRepository
	cache *cache.Cache
}

func NewSpeciesService(r repo.SpeciesRepository, ttl time.Duration) service.SpeciesService {
	return &speciesSvc{r: r, cache: cache.New(ttl, 2*ttl)}
}

func (s *speciesSvc) List(ctx context.Context) ([]entities.TreeSpecies, error) {
	if v, ok := s.cache.Get(listKey); ok {
		return v.([]entities.TreeSpecies), nil
	}
	out, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(listKey, out)
	return out, nil
}

func (s *speciesSvc) Get(ctx context.Context, id uint) (*entities.TreeSpecies, error) {
	key := "species:" + strconv.FormatUint(uint64(id), 10)
	if v, ok := s.cache.Get(key); ok {
		sp := v.(entities.TreeSpecies)
		return &sp, nil
	}
	sp, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, *sp)
	return sp, nil
}

func (s *speciesSvc) Import(ctx context.Context, rows []entities.TreeSpecies) (int, int, error) {
	defer s.cache.Flush()
	created, updated := 0, 0
	for i := range rows {
		isNew, err := s.r.Upsert(ctx, &rows[i])
		if err != nil {
			return created, updated, err
		}
		if isNew {
			created++
		} else {
			updated++
		}
	}
	return created, updated, nil
}
