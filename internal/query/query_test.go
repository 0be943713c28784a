package query

import (
	"net/url"
	"testing"

	"github.com/crucial707/hci-inventory/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color string

func (c color) valid() bool { return c == "red" || c == "blue" }

func TestParsePage_Defaults(t *testing.T) {
	p, err := ParsePage(url.Values{}, 0)
	require.NoError(t, err)
	assert.Equal(t, Page{Limit: DefaultLimit, Offset: 0}, p)
}

func TestParsePage_CapsLimit(t *testing.T) {
	p, err := ParsePage(url.Values{"limit": {"500"}, "offset": {"10"}}, 0)
	require.NoError(t, err)
	assert.Equal(t, Page{Limit: MaxLimit, Offset: 10}, p)

	p, err = ParsePage(url.Values{"limit": {"30"}}, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, p.Limit)
}

func TestParsePage_RejectsOutOfRange(t *testing.T) {
	cases := []url.Values{
		{"limit": {"-1"}},
		{"limit": {"0"}},
		{"limit": {"ten"}},
		{"offset": {"-5"}},
		{"offset": {"1.5"}},
	}
	for _, q := range cases {
		_, err := ParsePage(q, 0)
		assert.True(t, apperr.Is(err, apperr.KindValidation), "query %v", q)
	}
}

func TestParsePage_ReportsBoth(t *testing.T) {
	_, err := ParsePage(url.Values{"limit": {"-1"}, "offset": {"-1"}}, 0)
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, []string{"limit", "offset"}, e.SortedFields())
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, Meta{Total: 7, Limit: 2, Offset: 4, Page: 3}, NewMeta(7, Page{Limit: 2, Offset: 4}))
	assert.Equal(t, 1, NewMeta(0, Page{}).Page)
}

func TestWhere_Builds(t *testing.T) {
	var w Where
	assert.Equal(t, "", w.SQL())

	w.EqIf("status", "active")
	w.EqIf("type", "")
	w.ILike("name", "ac")
	w.Or("u1", "entity_id", "actor")
	assert.Equal(t, ` WHERE status = $1 AND name ILIKE $2 ESCAPE '\' AND (entity_id = $3 OR actor = $3)`, w.SQL())
	assert.Equal(t, []any{"active", "%ac%", "u1"}, w.Args())

	clause, args := w.Paginate(Page{Limit: 5, Offset: 10})
	assert.Equal(t, " LIMIT $4 OFFSET $5", clause)
	assert.Equal(t, []any{"active", "%ac%", "u1", 5, 10}, args)
	assert.Len(t, w.Args(), 3)
}

func TestWhere_ILikeEscapesWildcards(t *testing.T) {
	var w Where
	w.ILike("name", `50%_off\`)
	assert.Equal(t, []any{`%50\%\_off\\%`}, w.Args())
}

func TestEnum_UnknownValueMatchesNothing(t *testing.T) {
	var w Where
	Enum(&w, "color", "green", color.valid)
	assert.Equal(t, " WHERE FALSE", w.SQL())
	assert.Empty(t, w.Args())

	var ok Where
	Enum(&ok, "color", "red", color.valid)
	assert.Equal(t, " WHERE color = $1", ok.SQL())
}

func TestUUID_MalformedMatchesNothing(t *testing.T) {
	var w Where
	UUID(&w, "company_id", "not-a-uuid")
	assert.Equal(t, " WHERE FALSE", w.SQL())

	var ok Where
	UUID(&ok, "company_id", "7d6f3c1e-2b4a-4c8e-9f10-1a2b3c4d5e6f")
	assert.Equal(t, []any{"7d6f3c1e-2b4a-4c8e-9f10-1a2b3c4d5e6f"}, ok.Args())

	for _, alt := range []string{
		"urn:uuid:7d6f3c1e-2b4a-4c8e-9f10-1a2b3c4d5e6f",
		"{7d6f3c1e-2b4a-4c8e-9f10-1a2b3c4d5e6f}",
		"7D6F3C1E2B4A4C8E9F101A2B3C4D5E6F",
	} {
		var w Where
		UUID(&w, "company_id", alt)
		assert.Equal(t, " WHERE company_id = $1", w.SQL(), alt)
		assert.Equal(t, []any{"7d6f3c1e-2b4a-4c8e-9f10-1a2b3c4d5e6f"}, w.Args(), alt)
	}
}

func TestAuditFilterFrom(t *testing.T) {
	f := AuditFilterFrom(url.Values{"entity_type": {" company "}, "entity_id": {"c1"}})
	assert.Equal(t, AuditFilter{EntityType: "company", EntityID: "c1"}, f)
}
