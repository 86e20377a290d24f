package keyword

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtract_VocabularyHitsComeFirst(t *testing.T) {
	got := Extract("Python developer with Python and Docker experience", 5)

	if len(got) == 0 {
		t.Fatal("expected keywords, got none")
	}

	idx := make(map[string]int, len(got))
	for i, kw := range got {
		idx[kw] = i
	}

	pyIdx, hasPython := idx["python"]
	dkIdx, hasDocker := idx["docker"]
	if !hasPython || !hasDocker {
		t.Fatalf("expected python and docker in %v", got)
	}

	// Vocabulary hits precede any frequency-driven filler term.
	expIdx, hasFiller := idx["experience"]
	if hasFiller && (expIdx < pyIdx || expIdx < dkIdx) {
		t.Errorf("filler term ranked before vocabulary hits: %v", got)
	}
}

func TestExtract_MultiWordVocabularyBySubstring(t *testing.T) {
	got := Extract("Strong background in Machine Learning and problem solving", 10)

	want := map[string]bool{"machine learning": false, "problem solving": false}
	for _, kw := range got {
		if _, ok := want[kw]; ok {
			want[kw] = true
		}
	}
	for kw, found := range want {
		if !found {
			t.Errorf("expected multi-word vocabulary hit %q in %v", kw, got)
		}
	}
}

func TestExtract_DropsStopwordsAndShortTokens(t *testing.T) {
	got := Extract("the and for with are our in at by it", 10)
	if len(got) != 0 {
		t.Errorf("expected no keywords from stopword-only text, got %v", got)
	}
}

func TestExtract_FrequencyOrderWithFirstSeenTiebreak(t *testing.T) {
	// kafka x3, redis x2; zeta and alpha tie at 1 and keep text order.
	got := Extract("kafka kafka kafka redis redis zeta alpha", 10)

	want := []string{"redis", "kafka", "zeta", "alpha"}
	// redis is a vocabulary hit and kafka is not, so redis leads despite
	// the lower count; the rest follow frequency then first occurrence.
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_TruncatesToTopN(t *testing.T) {
	text := "golang kafka grafana podman helm prometheus vault consul nomad packer"
	got := Extract(text, 3)
	if len(got) != 3 {
		t.Errorf("expected 3 keywords, got %d: %v", len(got), got)
	}
}

func TestExtract_FewerThanTopN(t *testing.T) {
	got := Extract("kubernetes", 30)
	if !reflect.DeepEqual(got, []string{"kubernetes"}) {
		t.Errorf("Extract = %v, want [kubernetes]", got)
	}
}

func TestExtract_EmptyText(t *testing.T) {
	if got := Extract("", 10); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestExtract_NoDuplicates(t *testing.T) {
	got := Extract(strings.Repeat("docker postgresql teamwork pipeline ", 5), 20)

	seen := make(map[string]struct{}, len(got))
	for _, kw := range got {
		if _, dup := seen[kw]; dup {
			t.Errorf("duplicate keyword %q in %v", kw, got)
		}
		seen[kw] = struct{}{}
	}
}

func TestExtract_Deterministic(t *testing.T) {
	text := "python java docker kubernetes aws terraform leadership communication teamwork"
	first := Extract(text, 10)
	for i := 0; i < 20; i++ {
		if got := Extract(text, 10); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged: %v vs %v", i, got, first)
		}
	}
}
