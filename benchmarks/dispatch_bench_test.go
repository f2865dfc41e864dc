package benchmarks

import (
	"fmt"
	"testing"

	"github.com/comalice/statestore"
	"github.com/comalice/statestore/testutil"
)

func BenchmarkDispatch(b *testing.B) {
	s := MustStore(testutil.Counter)
	inc := statestore.Action{Type: testutil.Inc}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := s.Dispatch(inc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDispatchRecord(b *testing.B) {
	s := MustStore(testutil.Counter)
	inc := map[string]any{"type": testutil.Inc}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := s.Dispatch(inc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDispatchListeners(b *testing.B) {
	for _, n := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("listeners=%d", n), func(b *testing.B) {
			s := MustStore(testutil.Counter)
			calls := 0
			for range n {
				if _, err := s.Subscribe(func() { calls++ }); err != nil {
					b.Fatal(err)
				}
			}
			inc := statestore.Action{Type: testutil.Inc}
			b.ReportAllocs()
			for b.Loop() {
				if _, err := s.Dispatch(inc); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(float64(calls)/float64(b.N), "calls/op")
		})
	}
}

func BenchmarkSubscribeChurn(b *testing.B) {
	s := MustStore(testutil.Counter)
	listener := func() {}
	b.ReportAllocs()
	for b.Loop() {
		unsubscribe, err := s.Subscribe(listener)
		if err != nil {
			b.Fatal(err)
		}
		unsubscribe()
	}
}
