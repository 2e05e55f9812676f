package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/felt/internal/randutil"
	"github.com/lox/felt/table"
	"github.com/lox/felt/variant"
)

func TestBlindDefaults(t *testing.T) {
	nt := variant.NoLimitTexasHoldem(2)
	stud := variant.SevenCardStud(2, 4)

	if sb, bb := blindDefaults(nt, 0, 2); sb != 1 || bb != 2 {
		t.Fatalf("hold'em defaults: want 1/2 got %d/%d", sb, bb)
	}
	if sb, bb := blindDefaults(nt, 0, 1); sb != 1 || bb != 1 {
		t.Fatalf("small bet floor: want 1/1 got %d/%d", sb, bb)
	}
	if sb, bb := blindDefaults(nt, 1, 2); sb != 0 || bb != 0 {
		t.Fatalf("ante game should have no blinds, got %d/%d", sb, bb)
	}
	if sb, bb := blindDefaults(stud, 0, 2); sb != 0 || bb != 0 {
		t.Fatalf("bring-in game should have no blinds, got %d/%d", sb, bb)
	}
}

func TestResolveVariantMatchesCaseInsensitively(t *testing.T) {
	f := gameFlags{Variant: "nt", Bet: 2}
	v, err := f.resolveVariant()
	if err != nil {
		t.Fatalf("resolve nt: %v", err)
	}
	if v.Code != "NT" {
		t.Fatalf("want NT, got %q", v.Code)
	}

	f = gameFlags{Variant: "f7s", Bet: 2}
	if v, err = f.resolveVariant(); err != nil || v.Code != "F7S" {
		t.Fatalf("want F7S, got %q (err %v)", v.Code, err)
	}

	f = gameFlags{Variant: "omaha"}
	if _, err = f.resolveVariant(); err == nil {
		t.Fatal("expected error for unknown code")
	}
}

func TestResolveVariantDoublesBigBet(t *testing.T) {
	f := gameFlags{Variant: "FT", Bet: 3}
	v, err := f.resolveVariant()
	if err != nil {
		t.Fatalf("resolve FT: %v", err)
	}
	if got := v.Streets[0].MinBet; got != 3 {
		t.Fatalf("small bet: want 3 got %d", got)
	}
	if got := v.Streets[len(v.Streets)-1].MinBet; got != 6 {
		t.Fatalf("big bet: want 6 got %d", got)
	}
}

func TestTableOptionsBuildsPlayableState(t *testing.T) {
	f := gameFlags{Variant: "NT", Seats: 3, Stack: 500, Bet: 2}
	opts, v, err := f.tableOptions(randutil.New(1))
	if err != nil {
		t.Fatalf("tableOptions: %v", err)
	}

	st, err := table.New(v, opts...)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	if got := st.PlayerCount(); got != 3 {
		t.Fatalf("players: want 3 got %d", got)
	}
	for i, stack := range st.StartingStacks() {
		if stack != 500 {
			t.Fatalf("seat %d stack: want 500 got %d", i, stack)
		}
	}
	blinds := st.BlindsOrStraddles()
	if blinds[0] != 1 || blinds[1] != 2 || blinds[2] != 0 {
		t.Fatalf("blinds: want [1 2 0] got %v", blinds)
	}
}

func TestTableOptionsAnteOnlyGame(t *testing.T) {
	f := gameFlags{Variant: "KP", Seats: 2, Ante: 1, Bet: 1}
	opts, v, err := f.tableOptions(randutil.New(1))
	if err != nil {
		t.Fatalf("tableOptions: %v", err)
	}

	st, err := table.New(v, opts...)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	for i, ante := range st.Antes() {
		if ante != 1 {
			t.Fatalf("seat %d ante: want 1 got %d", i, ante)
		}
	}
	for i, blind := range st.BlindsOrStraddles() {
		if blind != 0 {
			t.Fatalf("seat %d blind: want 0 got %d", i, blind)
		}
	}
}

func TestTableOptionsRejectsSingleSeat(t *testing.T) {
	f := gameFlags{Variant: "NT", Seats: 1, Bet: 2}
	if _, _, err := f.tableOptions(randutil.New(1)); err == nil {
		t.Fatal("expected error for one seat")
	}
}

func TestConfigFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.hcl", "b.hcl", "ignore.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte{}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := configFiles(dir)
	if err != nil {
		t.Fatalf("configFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("want 2 hcl files, got %v", files)
	}

	single, err := configFiles(filepath.Join(dir, "a.hcl"))
	if err != nil || len(single) != 1 {
		t.Fatalf("single file: got %v (err %v)", single, err)
	}

	if _, err := configFiles(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("expected error for missing path")
	}

	empty := t.TempDir()
	if _, err := configFiles(empty); err == nil {
		t.Fatal("expected error for directory without hcl files")
	}
}
