package pokeapi_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"pokedex/internal/domain"
	"pokedex/internal/pokeapi"
	"pokedex/internal/pokeapi/pokeapitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures() []domain.PokemonDetail {
	// Listed out of id order on purpose.
	return []domain.PokemonDetail{
		pokeapitest.Detail(25, "pikachu", "electric"),
		pokeapitest.Detail(1, "bulbasaur", "grass", "poison"),
		pokeapitest.Detail(6, "charizard", "fire", "flying"),
		pokeapitest.Detail(4, "charmander", "fire"),
	}
}

func TestLoadAllReturnsSortedNormalizedEntities(t *testing.T) {
	srv := pokeapitest.New(t, fixtures()...)
	client := pokeapi.NewClient(srv.APIConfig())

	got, err := client.LoadAll(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, []int{1, 4, 6, 25}, []int{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
	assert.Equal(t, domain.Pokemon{
		ID:        6,
		Name:      "charizard",
		Types:     []string{"fire", "flying"},
		SpriteURL: "https://img.example/6.png",
	}, got[2])
	assert.Equal(t, 1, srv.Hits("/api/v2/pokemon"))
}

func TestLoadAllHonorsLimit(t *testing.T) {
	srv := pokeapitest.New(t, fixtures()...)
	client := pokeapi.NewClient(srv.APIConfig())

	got, err := client.LoadAll(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 25, got[1].ID)
}

func TestLoadAllFailsWholeBatchOnOneFailure(t *testing.T) {
	srv := pokeapitest.New(t, fixtures()...)
	srv.FailID(6, http.StatusInternalServerError)
	client := pokeapi.NewClient(srv.APIConfig())

	got, err := client.LoadAll(context.Background(), 10)
	require.Error(t, err)
	assert.Nil(t, got, "no partial result")

	var loadErr *domain.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "record", loadErr.Op)
	assert.True(t, errors.Is(err, domain.ErrUnexpectedStatus))
}

func TestLoadAllListFailure(t *testing.T) {
	srv := pokeapitest.New(t, fixtures()...)
	srv.FailList(http.StatusServiceUnavailable)
	client := pokeapi.NewClient(srv.APIConfig())

	_, err := client.LoadAll(context.Background(), 10)
	var loadErr *domain.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "list", loadErr.Op)
	assert.Contains(t, loadErr.URL, "limit=10")
	assert.Contains(t, loadErr.URL, "offset=0")
}

func TestLoadAllCanceledContext(t *testing.T) {
	srv := pokeapitest.New(t, fixtures()...)
	client := pokeapi.NewClient(srv.APIConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.LoadAll(ctx, 10)
	require.Error(t, err)
	assert.True(t, pokeapi.IsCanceled(err))
}

func TestFetchDetailIncludesStats(t *testing.T) {
	srv := pokeapitest.New(t, fixtures()...)
	client := pokeapi.NewClient(srv.APIConfig())

	d, err := client.FetchDetail(context.Background(), 25)
	require.NoError(t, err)
	assert.Equal(t, "pikachu", d.Name)
	assert.Equal(t, []string{"electric"}, d.Types)
	assert.Equal(t, pokeapitest.Detail(25, "pikachu", "electric").Stats, d.Stats)
}

func TestFetchDetailRefetchesEveryCall(t *testing.T) {
	srv := pokeapitest.New(t, fixtures()...)
	client := pokeapi.NewClient(srv.APIConfig())

	for i := 0; i < 3; i++ {
		_, err := client.FetchDetail(context.Background(), 1)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, srv.Hits("/api/v2/pokemon/1"))
}

func TestFetchDetailNotFound(t *testing.T) {
	srv := pokeapitest.New(t, fixtures()...)
	client := pokeapi.NewClient(srv.APIConfig())

	_, err := client.FetchDetail(context.Background(), 9999)
	require.Error(t, err)

	var detailErr *domain.DetailFetchError
	require.True(t, errors.As(err, &detailErr))
	assert.Equal(t, 9999, detailErr.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestURLs(t *testing.T) {
	srv := pokeapitest.New(t)
	cfg := srv.APIConfig()
	cfg.BaseURL += "/"
	client := pokeapi.NewClient(cfg)

	assert.Equal(t, srv.URL+"/api/v2/pokemon/7", client.DetailURL(7))
	assert.Equal(t, srv.URL+"/api/v2/pokemon?limit=200&offset=0", client.ListURL(200))
}
