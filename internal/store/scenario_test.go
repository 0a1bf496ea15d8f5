package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/utsavhq/utsav/internal/budget"
	"github.com/utsavhq/utsav/internal/event"
)

// scenario is a declarative operation sequence against a fresh store.
// Scenarios live in testdata/scenarios and pin the observable contract of
// the mutation API.
type scenario struct {
	Name   string `yaml:"name"`
	Strict bool   `yaml:"strict,omitempty"`
	Steps  []step `yaml:"steps"`

	// Final is a field-subset match against the surviving collection,
	// in order.
	Final []map[string]any `yaml:"final"`
}

type step struct {
	// Op is one of add, update, delete, spent.
	Op string `yaml:"op"`

	Event map[string]any `yaml:"event,omitempty"` // add
	Patch map[string]any `yaml:"patch,omitempty"` // update
	ID    string         `yaml:"id,omitempty"`    // delete, spent

	Want      bool  `yaml:"want"`                // expected operation result
	WantSpent int64 `yaml:"wantSpent,omitempty"` // spent only
}

func TestScenarios(t *testing.T) {
	dir := filepath.Join("testdata", "scenarios")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		require.NoError(t, err)

		var sc scenario
		require.NoError(t, yaml.Unmarshal(data, &sc), "parse %s", entry.Name())

		t.Run(sc.Name, func(t *testing.T) {
			runScenario(t, sc)
		})
	}
}

func runScenario(t *testing.T, sc scenario) {
	t.Helper()
	opts := Options{}
	if sc.Strict {
		opts.NotFound = Strict
	}
	s := createTestStore(t, &fakeAdapter{}, opts)

	for i, st := range sc.Steps {
		switch st.Op {
		case "add":
			assert.Equal(t, st.Want, s.Add(toEvent(st.Event)), "step %d (add)", i)
		case "update":
			assert.Equal(t, st.Want, s.Update(toPatch(st.Patch)), "step %d (update)", i)
		case "delete":
			assert.Equal(t, st.Want, s.Delete(st.ID), "step %d (delete)", i)
		case "spent":
			e, ok := s.Get(st.ID)
			require.True(t, ok, "step %d (spent): no event %s", i, st.ID)
			assert.Equal(t, st.WantSpent, budget.TotalVendorCost(e, s.Catalog()), "step %d (spent)", i)
		default:
			t.Fatalf("step %d: unknown op %q", i, st.Op)
		}
	}

	events := s.List()
	require.Len(t, events, len(sc.Final), "surviving collection size")
	for i, want := range sc.Final {
		assertEventSubset(t, want, events[i], i)
	}
}

func toEvent(m map[string]any) event.Event {
	var e event.Event
	for k, v := range m {
		switch k {
		case "id":
			e.ID = v.(string)
		case "title":
			e.Title = v.(string)
		case "eventType":
			e.EventType = v.(string)
		case "date":
			e.Date = v.(string)
		case "location":
			e.Location = v.(string)
		case "budget":
			e.Budget = int64(v.(int))
		case "vendors":
			e.Vendors = toStrings(v)
		case "donateFoodToNGO":
			e.DonateFoodToNGO = v.(bool)
		}
	}
	return e
}

func toPatch(m map[string]any) event.Patch {
	var p event.Patch
	for k, v := range m {
		switch k {
		case "id":
			p.ID = v.(string)
		case "title":
			p.Title = event.String(v.(string))
		case "eventType":
			p.EventType = event.String(v.(string))
		case "date":
			p.Date = event.String(v.(string))
		case "location":
			p.Location = event.String(v.(string))
		case "budget":
			p.Budget = event.Int64(int64(v.(int)))
		case "vendors":
			vendors := toStrings(v)
			p.Vendors = &vendors
		case "donateFoodToNGO":
			p.DonateFoodToNGO = event.Bool(v.(bool))
		}
	}
	return p
}

func toStrings(v any) []string {
	raw := v.([]any)
	out := make([]string, len(raw))
	for i, item := range raw {
		out[i] = item.(string)
	}
	return out
}

func assertEventSubset(t *testing.T, want map[string]any, got event.Event, i int) {
	t.Helper()
	for k, v := range want {
		switch k {
		case "id":
			assert.Equal(t, v.(string), got.ID, "final[%d].id", i)
		case "title":
			assert.Equal(t, v.(string), got.Title, "final[%d].title", i)
		case "eventType":
			assert.Equal(t, v.(string), got.EventType, "final[%d].eventType", i)
		case "date":
			assert.Equal(t, v.(string), got.Date, "final[%d].date", i)
		case "budget":
			assert.Equal(t, int64(v.(int)), got.Budget, "final[%d].budget", i)
		case "vendors":
			assert.Equal(t, toStrings(v), got.Vendors, "final[%d].vendors", i)
		case "donateFoodToNGO":
			assert.Equal(t, v.(bool), got.DonateFoodToNGO, "final[%d].donateFoodToNGO", i)
		default:
			t.Fatalf("final[%d]: unknown field %q", i, k)
		}
	}
}
