// SPDX-License-Identifier: Unlicense OR MIT

package event

import (
	"testing"
)

func TestMergeAbsorbs(t *testing.T) {
	all := []Status{Ignored, Captured}
	for _, a := range all {
		for _, b := range all {
			if a.Merge(b) != b.Merge(a) {
				t.Errorf("%v.Merge(%v) is not commutative", a, b)
			}
			for _, c := range all {
				if a.Merge(b).Merge(c) != a.Merge(b.Merge(c)) {
					t.Errorf("merge of %v, %v, %v is not associative", a, b, c)
				}
			}
		}
	}
	if got := Captured.Merge(Ignored); got != Captured {
		t.Errorf("got %v, want Captured", got)
	}
	if got := Merge(Ignored, Ignored, Captured, Ignored); got != Captured {
		t.Errorf("got %v, want Captured", got)
	}
	if got := Merge(); got != Ignored {
		t.Errorf("empty merge: got %v, want Ignored", got)
	}
}
