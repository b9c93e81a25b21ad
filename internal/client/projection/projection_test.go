package projection

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/dmitrijs2005/usercatalog/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pair() []models.User {
	return []models.User{
		{ID: "1", Name: "Bob", Email: "b@x.com", Role: models.RoleUser},
		{ID: "2", Name: "amy", Email: "a@x.com", Role: models.RoleAdmin},
	}
}

func names(users []models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Name
	}
	return out
}

func ids(users []models.User) []models.ID {
	out := make([]models.ID, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func TestSort_CaseInsensitiveAndToggle(t *testing.T) {
	s := models.DefaultSort()
	assert.Equal(t, []string{"amy", "Bob"}, names(Sort(pair(), s)))

	s = s.Toggle(models.SortByName)
	assert.Equal(t, []string{"Bob", "amy"}, names(Sort(pair(), s)))
}

func TestSort_Numeric(t *testing.T) {
	users := []models.User{{Name: "item10"}, {Name: "item2"}, {Name: "Item1"}}
	got := Sort(users, models.SortState{Key: models.SortByName, Direction: models.Ascending})
	assert.Equal(t, []string{"Item1", "item2", "item10"}, names(got))
}

func TestSort_AccentsIgnored(t *testing.T) {
	users := []models.User{{ID: "1", Name: "Zoe"}, {ID: "2", Name: "émile"}, {ID: "3", Name: "Eve"}}
	got := Sort(users, models.DefaultSort())
	assert.Equal(t, []models.ID{"2", "3", "1"}, ids(got))
}

func TestSort_StableForEqualKeysBothDirections(t *testing.T) {
	users := []models.User{
		{ID: "1", Name: "a", Role: models.RoleUser},
		{ID: "2", Name: "b", Role: models.RoleAdmin},
		{ID: "3", Name: "c", Role: models.RoleUser},
		{ID: "4", Name: "d", Role: models.RoleAdmin},
		{ID: "5", Name: "e", Role: "USER"},
	}
	asc := Sort(users, models.SortState{Key: models.SortByRole, Direction: models.Ascending})
	assert.Equal(t, []models.ID{"2", "4", "1", "3", "5"}, ids(asc))

	desc := Sort(users, models.SortState{Key: models.SortByRole, Direction: models.Descending})
	assert.Equal(t, []models.ID{"1", "3", "5", "2", "4"}, ids(desc))
}

func TestSort_DoesNotModifyInput(t *testing.T) {
	in := pair()
	_ = Sort(in, models.DefaultSort())
	assert.Equal(t, pair(), in)
}

func TestSort_TogglingTwiceRestoresOrder(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	users := make([]models.User, 40)
	for i := range users {
		users[i] = models.User{ID: models.ID(fmt.Sprint(i)), Name: fmt.Sprintf("user%d", r.Intn(10)), Email: fmt.Sprintf("e%d@x", r.Intn(5))}
	}
	for _, k := range models.Columns {
		s := models.SortState{Key: models.SortByName}.Toggle(k)
		first := Sort(users, s)
		again := Sort(users, s.Toggle(k).Toggle(k))
		assert.Equal(t, ids(first), ids(again), "column %s", k)
	}
}

func TestSort_OrderedByKey(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	users := make([]models.User, 60)
	for i := range users {
		users[i] = models.User{ID: models.ID(fmt.Sprint(i)), Email: fmt.Sprintf("n%d@x.com", r.Intn(200))}
	}
	got := Sort(users, models.SortState{Key: models.SortByEmail, Direction: models.Ascending})
	col := newCollator()
	for i := 1; i < len(got); i++ {
		require.LessOrEqual(t, col.CompareString(got[i-1].Email, got[i].Email), 0, "%s before %s", got[i-1].Email, got[i].Email)
	}
}

func TestFilter_MatchesAnyColumn(t *testing.T) {
	got := Filter(pair(), "adm")
	assert.Equal(t, []models.ID{"2"}, ids(got))

	got = Filter(pair(), "  B@X ")
	assert.Equal(t, []models.ID{"1"}, ids(got))

	got = Filter(pair(), "x.com")
	assert.Equal(t, []models.ID{"1", "2"}, ids(got))

	assert.Empty(t, Filter(pair(), "nobody"))
}

func TestFilter_EmptyQueryKeepsAll(t *testing.T) {
	assert.Equal(t, pair(), Filter(pair(), ""))
	assert.Equal(t, pair(), Filter(pair(), "   "))
}

func TestFilter_Property(t *testing.T) {
	users := []models.User{
		{ID: "1", Name: "Ann Lee", Email: "ann@corp.io", Role: models.RoleManager},
		{ID: "2", Name: "Li", Email: "li@home.net", Role: models.RoleUser},
		{ID: "3", Name: "Mo", Email: "mo@corp.io", Role: models.RoleAdmin},
	}
	for _, q := range []string{"corp", "LI", "er", "an", "@", "home", "zz", " o "} {
		got := Filter(users, q)
		want := []models.ID{}
		needle := strings.ToLower(strings.TrimSpace(q))
		for _, u := range users {
			hay := strings.ToLower(u.Name + "\x00" + u.Email + "\x00" + string(u.Role))
			if strings.Contains(hay, needle) {
				want = append(want, u.ID)
			}
		}
		assert.Equal(t, want, ids(got), "query %q", q)
	}
}

func TestApply_Scenario(t *testing.T) {
	got := Apply(pair(), "x.com", models.DefaultSort())
	assert.Equal(t, []string{"amy", "Bob"}, names(got))
}

func TestProjector_Memoizes(t *testing.T) {
	p := NewProjector()
	users := pair()

	a := p.Project(1, users, "", models.DefaultSort())
	b := p.Project(1, users, "", models.DefaultSort())
	require.Len(t, a, 2)
	assert.Same(t, &a[0], &b[0], "same inputs reuse the cached slice")

	c := p.Project(2, users[:1], "", models.DefaultSort())
	assert.Equal(t, []string{"Bob"}, names(c))

	d := p.Project(2, users[:1], "", models.DefaultSort().Toggle(models.SortByName))
	assert.Equal(t, []string{"Bob"}, names(d))

	e := p.Project(3, users, "adm", models.DefaultSort())
	assert.Equal(t, []string{"amy"}, names(e))
}
