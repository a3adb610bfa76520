package domain

import "testing"

func TestNewGraphEntity(t *testing.T) {
	t.Run("named entities use their name as label", func(t *testing.T) {
		id := Structural(TypeImage, At(ImageIndex, 0))
		e := NewGraphEntity(id, id.Coordinates(), &Image{Name: "cells"})
		if e.Label != "cells" {
			t.Errorf("expected label 'cells', got %q", e.Label)
		}
		if e.ID != "Image:0" || e.Type != TypeImage {
			t.Errorf("unexpected id/type %q/%q", e.ID, e.Type)
		}
	})

	t.Run("unnamed entities fall back to the id", func(t *testing.T) {
		id := Structural(TypeWell, At(PlateIndex, 0), At(WellIndex, 3))
		e := NewGraphEntity(id, id.Coordinates(), &Well{})
		if e.Label != "Well:0:3" {
			t.Errorf("expected label 'Well:0:3', got %q", e.Label)
		}
	})

	t.Run("external id is carried", func(t *testing.T) {
		id := Structural(TypeLaser, At(InstrumentIndex, 0), At(LightSourceIndex, 0))
		l := &Laser{}
		l.SetExternalID("LightSource:0:0")
		if e := NewGraphEntity(id, nil, l); e.ExternalID != "LightSource:0:0" {
			t.Errorf("got %q", e.ExternalID)
		}
	})
}

func TestGraphSort(t *testing.T) {
	ch := func(i int) GraphEntity {
		id := Structural(TypeChannel, At(ImageIndex, 0), At(ChannelIndex, i))
		return NewGraphEntity(id, id.Coordinates(), &Channel{})
	}
	img := Structural(TypeImage, At(ImageIndex, 0))
	g := &Graph{
		Entities: []GraphEntity{ch(10), NewGraphEntity(img, img.Coordinates(), &Image{}), ch(2)},
		References: []GraphReference{
			{From: "LightPath:0:1", To: "Filter:0:0"},
			{From: "Channel:0:0", To: "Laser:0:1"},
			{From: "Channel:0:0", To: "Laser:0:0"},
		},
	}
	g.Sort()

	wantIDs := []string{"Channel:0:2", "Channel:0:10", "Image:0"}
	for i, want := range wantIDs {
		if g.Entities[i].ID != want {
			t.Errorf("entity %d = %s, want %s", i, g.Entities[i].ID, want)
		}
	}
	if g.References[0].To != "Laser:0:0" || g.References[2].From != "LightPath:0:1" {
		t.Errorf("unexpected reference order %v", g.References)
	}
}

func TestGraphBroken(t *testing.T) {
	laser := Structural(TypeLaser, At(InstrumentIndex, 0), At(LightSourceIndex, 0))
	l := &Laser{}
	l.SetExternalID("LightSource:0:0")
	g := &Graph{
		Entities: []GraphEntity{NewGraphEntity(laser, laser.Coordinates(), l)},
		References: []GraphReference{
			{From: "Channel:0:0", To: "Laser:0:0"},
			{From: "Channel:0:1", To: "LightSource:0:0"},
			{From: "Channel:0:2", To: "Detector:0:0"},
		},
	}

	broken := g.Broken()
	if len(broken) != 1 || broken[0].To != "Detector:0:0" {
		t.Errorf("expected only the detector reference to dangle, got %v", broken)
	}
}
