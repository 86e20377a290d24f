package keyword

import (
	"reflect"
	"testing"
)

func TestMatch_Basic(t *testing.T) {
	matched, missing := Match(
		[]string{"python", "docker"},
		[]string{"python", "kubernetes"},
	)

	if !reflect.DeepEqual(matched, []string{"python"}) {
		t.Errorf("matched = %v, want [python]", matched)
	}
	if !reflect.DeepEqual(missing, []string{"kubernetes"}) {
		t.Errorf("missing = %v, want [kubernetes]", missing)
	}
}

func TestMatch_CaseFoldsAndTrims(t *testing.T) {
	matched, missing := Match(
		[]string{" Python ", "DOCKER"},
		[]string{"python", "docker", "Terraform"},
	)

	if !reflect.DeepEqual(matched, []string{"docker", "python"}) {
		t.Errorf("matched = %v, want [docker python]", matched)
	}
	if !reflect.DeepEqual(missing, []string{"terraform"}) {
		t.Errorf("missing = %v, want [terraform]", missing)
	}
}

func TestMatch_SortedOutput(t *testing.T) {
	matched, missing := Match(
		[]string{"zookeeper", "ansible", "mysql"},
		[]string{"zookeeper", "mysql", "ansible", "vault", "consul"},
	)

	if !reflect.DeepEqual(matched, []string{"ansible", "mysql", "zookeeper"}) {
		t.Errorf("matched not sorted: %v", matched)
	}
	if !reflect.DeepEqual(missing, []string{"consul", "vault"}) {
		t.Errorf("missing not sorted: %v", missing)
	}
}

func TestMatch_IntersectionIsSymmetric(t *testing.T) {
	a := []string{"go", "rust", "python"}
	b := []string{"python", "java", "go"}

	ab, _ := Match(a, b)
	ba, _ := Match(b, a)

	if !reflect.DeepEqual(ab, ba) {
		t.Errorf("intersection not symmetric: %v vs %v", ab, ba)
	}
}

func TestMatch_EmptyInputs(t *testing.T) {
	matched, missing := Match(nil, nil)
	if len(matched) != 0 || len(missing) != 0 {
		t.Errorf("expected empty results, got matched=%v missing=%v", matched, missing)
	}
}

func TestScore(t *testing.T) {
	cases := []struct {
		name   string
		resume []string
		job    []string
		want   float64
	}{
		{"half matched", []string{"python", "docker"}, []string{"python", "kubernetes"}, 0.5},
		{"all matched", []string{"python", "docker"}, []string{"python", "docker"}, 1.0},
		{"none matched", []string{"python"}, []string{"java"}, 0.0},
		{"empty job list", []string{"python"}, nil, 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.resume, tc.job)
			if got != tc.want {
				t.Errorf("Score = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScore_CappedWithDuplicateInflatedJobList(t *testing.T) {
	// Duplicates collapse in the matched set but inflate the denominator;
	// the score must stay within [0,1].
	got := Score([]string{"python"}, []string{"python", "python"})
	if got < 0 || got > 1 {
		t.Errorf("Score out of range: %v", got)
	}
}
