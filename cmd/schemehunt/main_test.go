package main

import (
	"context"
	"testing"

	"identicon/internal/dot"
)

func TestHuntFindsEveryScheme(t *testing.T) {
	for _, s := range dot.Schemes() {
		t.Run(s.Name, func(t *testing.T) {
			res, ok := hunt(context.Background(), target{scheme: s.Name, rotation: -1}, 4)
			if !ok {
				t.Fatal("hunt found nothing")
			}
			if got := dot.Explain(res.seed).Scheme.Name; got != s.Name {
				t.Errorf("seed %x uses scheme %s, want %s", res.seed, got, s.Name)
			}
			if len(res.seed) != 8 {
				t.Errorf("seed length = %d, want 8", len(res.seed))
			}
		})
	}
}

func TestHuntWithRotation(t *testing.T) {
	res, ok := hunt(context.Background(), target{scheme: "hmirror", rotation: 6}, 2)
	if !ok {
		t.Fatal("hunt found nothing")
	}
	d := dot.Explain(res.seed)
	if d.Scheme.Name != "hmirror" || d.Rotation != 6 {
		t.Errorf("seed %x gives %s/%d, want hmirror/6", res.seed, d.Scheme.Name, d.Rotation)
	}
}

func TestHuntCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, ok := hunt(ctx, target{scheme: "nope", rotation: -1}, 2); ok {
		t.Error("hunt reported a match for an unknown scheme")
	}
}
