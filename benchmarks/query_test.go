package benchmarks

import (
	"context"
	"testing"

	"github.com/mwhitford/criterion/pkg/criterion"
	"github.com/mwhitford/criterion/pkg/criterion/exprpred"
	"github.com/mwhitford/criterion/pkg/criterion/query"
)

func recordSchema() query.Schema[Record] {
	s := query.NewSchema[Record]()
	query.Bind(s, name)
	query.Bind(s, score)
	query.Bind(s, active)
	return s
}

// BenchmarkQueryFrom translates a built condition into a query.
func BenchmarkQueryFrom(b *testing.B) {
	p := highScorers()
	order := criterion.Ascending(score)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = query.From(p, query.WithOrder[Record](order), query.WithPage[Record](2, 50))
	}
}

// BenchmarkMemorySelect_1000 interprets a query over a thousand
// entities, the dynamic counterpart of BenchmarkAll_Ordered_1000.
func BenchmarkMemorySelect_1000(b *testing.B) {
	ctx := context.Background()
	provider := query.NewMemory(records(1000), recordSchema())
	q, err := query.From(highScorers(), query.WithOrder[Record](criterion.Ascending(score)))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := provider.Select(ctx, q); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExprCompile_Cached measures compiling an already-cached
// expression predicate.
func BenchmarkExprCompile_Cached(b *testing.B) {
	if _, err := exprpred.Compile[Record](`Active && Score >= 500`); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := exprpred.Compile[Record](`Active && Score >= 500`); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExprMatches evaluates one entity through a compiled
// expression predicate.
func BenchmarkExprMatches(b *testing.B) {
	p := exprpred.MustCompile[Record](`Active && Score >= 500`)
	r := Record{Name: "user-1", Score: 800, Active: true}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Matches(r)
	}
}
