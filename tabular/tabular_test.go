package tabular

import (
	"strings"
	"testing"

	"github.com/simweave/simweave/internal/testutil"
)

const plantCSV = `id,capacity_mw
coal1,500
gas1,250.5
wind1,80
`

const plantSchema = `{
  "type": "object",
  "required": ["id", "capacity_mw"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "capacity_mw": {"type": "number", "minimum": 0}
  }
}`

func buildPlant(row Row) (*testutil.StubAsset, error) {
	id, err := row.Text("id")
	if err != nil {
		return nil, err
	}
	capacity, err := row.Float("capacity_mw")
	if err != nil {
		return nil, err
	}
	asset := testutil.NewStubAsset(id)
	asset.Value = capacity
	return asset, nil
}

func TestLoadCSV(t *testing.T) {
	schema, err := CompileSchema(plantSchema)
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	plants, err := LoadCSV(strings.NewReader(plantCSV), schema, buildPlant)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(plants) != 3 {
		t.Fatalf("expected 3 plants, got %d", len(plants))
	}
	if plants[1].Ident().String() != "StubAsset.gas1" || plants[1].Value != 250.5 {
		t.Fatalf("unexpected plant: %#v", plants[1])
	}
}

func TestLoadCSV_SchemaRejectsRow(t *testing.T) {
	schema, err := CompileSchema(plantSchema)
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	bad := "id,capacity_mw\ncoal1,-10\n"
	if _, err := LoadCSV(strings.NewReader(bad), schema, buildPlant); err == nil {
		t.Fatal("negative capacity must fail schema validation")
	}
}

func TestLoadCSV_NoSchema(t *testing.T) {
	plants, err := LoadCSV(strings.NewReader(plantCSV), nil, buildPlant)
	if err != nil {
		t.Fatalf("load without schema: %v", err)
	}
	if len(plants) != 3 {
		t.Fatalf("expected 3 plants, got %d", len(plants))
	}
}

func TestBuild_AbortsOnFirstBadRow(t *testing.T) {
	rows := []Row{{"id": "ok", "capacity_mw": "1"}, {"id": "", "capacity_mw": "2"}}
	if _, err := Build(rows, buildPlant); err == nil {
		t.Fatal("expected build failure for empty id")
	}
}

func TestRow_TypedAccessors(t *testing.T) {
	row := Row{"n": "42", "f": "3.5", "s": "text"}
	if v, err := row.Int("n"); err != nil || v != 42 {
		t.Fatalf("Int: %v %v", v, err)
	}
	if _, err := row.Int("f"); err == nil {
		t.Fatal("Int must reject non-integers")
	}
	if v, err := row.Float("f"); err != nil || v != 3.5 {
		t.Fatalf("Float: %v %v", v, err)
	}
	if _, err := row.Text("missing"); err == nil {
		t.Fatal("Text must reject missing columns")
	}
}
