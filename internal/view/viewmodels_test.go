package view_test

import (
	"testing"

	"pokedex/internal/catalog"
	"pokedex/internal/domain"
	"pokedex/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberAndTitle(t *testing.T) {
	assert.Equal(t, "#001", view.Number(1))
	assert.Equal(t, "#025", view.Number(25))
	assert.Equal(t, "#1010", view.Number(1010))

	assert.Equal(t, "Bulbasaur", view.Title("bulbasaur"))
	assert.Equal(t, "Mr Mime", view.Title("mr-mime"))
	assert.Equal(t, "Special Attack", view.Title("special-attack"))
	assert.Equal(t, "", view.Title(""))
	assert.Equal(t, "Mon 2", view.Title("mon-2"))
}

func TestTitleKeepsMultibyteRunesWhole(t *testing.T) {
	assert.Equal(t, "Éclair Ünown", view.Title("éclair-ünown"))
	assert.Equal(t, "Flabébé", view.Title("flabébé"))
	assert.Equal(t, "Ñandú", view.Title("ñandú"))
}

func TestPageStatus(t *testing.T) {
	assert.Equal(t, "Page 2 / 10 - 200 results", view.PageStatus(2, 10, 200))
	assert.Equal(t, "Page 1 / 1 - 1 result", view.PageStatus(1, 1, 1))
	assert.Equal(t, "Page 1 / 1 - 0 results", view.PageStatus(1, 1, 0))
}

func TestListingFromState(t *testing.T) {
	var all []domain.Pokemon
	for i := 1; i <= 25; i++ {
		all = append(all, domain.Pokemon{ID: i, Name: "mon", Types: []string{"normal"}})
	}
	st := catalog.NewState(all, 20)
	st.Next()

	l := view.FromState(st)
	require.Len(t, l.Cards, 5)
	assert.Equal(t, "#021", l.Cards[0].Number)
	assert.Equal(t, 2, l.Page)
	assert.Equal(t, 2, l.TotalPages)
	assert.True(t, l.HasPrev)
	assert.False(t, l.HasNext)
	assert.Equal(t, 1, l.PrevPage)
	assert.Equal(t, "Page 2 / 2 - 25 results", l.Status)
	assert.Equal(t, "id-asc", l.Query.Sort)
}

func TestListingEchoesQuery(t *testing.T) {
	st := catalog.NewState([]domain.Pokemon{{ID: 6, Name: "charizard", Types: []string{"fire", "flying"}}}, 20)
	st.Apply(catalog.Query{Text: "char", Generation: "1", Types: []string{"fire"}, Sort: catalog.ParseSort("name-desc")})

	l := view.FromState(st)
	assert.Equal(t, "char", l.Query.Text)
	assert.Equal(t, "1", l.Query.Generation)
	assert.Equal(t, "name-desc", l.Query.Sort)
	assert.True(t, l.Query.Checked("fire"))
	assert.False(t, l.Query.Checked("flying"))
}

func TestNewDetail(t *testing.T) {
	d := view.NewDetail(domain.PokemonDetail{
		Pokemon: domain.Pokemon{ID: 25, Name: "pikachu", Types: []string{"electric"}, SpriteURL: "https://img/25.png"},
		Stats: []domain.Stat{
			{Name: "hp", Base: 35},
			{Name: "special-attack", Base: 50},
		},
	})

	assert.Equal(t, "#025", d.Number)
	assert.Equal(t, "Pikachu", d.Title)
	assert.Equal(t, []view.StatView{
		{Name: "hp", Label: "Hp", Base: 35},
		{Name: "special-attack", Label: "Special Attack", Base: 50},
	}, d.Stats)
	assert.Equal(t, 85, d.Total)
}

func TestOptions(t *testing.T) {
	gens := view.GenerationOptions()
	require.Len(t, gens, 10)
	assert.Equal(t, "", gens[0].Value)
	assert.Equal(t, "Generation 1 (1-151)", gens[1].Label)

	sorts := view.SortOptions()
	require.Len(t, sorts, 4)
	assert.Equal(t, "id-asc", sorts[0].Value)
	for _, o := range sorts {
		assert.NotEmpty(t, o.Label)
	}
}
