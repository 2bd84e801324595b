package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/resumatch/resumatch/internal/adapters/repository"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStore(t *testing.T) {
	Convey("Given an empty stats store", t, func() {
		store := repository.NewMemStore()
		ctx := context.Background()

		Convey("Then the initial snapshot should be zeroed", func() {
			stats := store.Stats(ctx)
			So(stats.TotalAnalyses, ShouldEqual, 0)
			So(stats.AverageScore, ShouldEqual, 0.0)
			So(stats.ByStrategy, ShouldBeEmpty)
		})

		Convey("When recording analyses", func() {
			store.Record(ctx, "lexical", 80.0)
			store.Record(ctx, "lexical", 60.0)
			store.Record(ctx, "semantic", 70.0)

			stats := store.Stats(ctx)

			Convey("Then the counters should accumulate", func() {
				So(stats.TotalAnalyses, ShouldEqual, 3)
				So(stats.ByStrategy["lexical"], ShouldEqual, 2)
				So(stats.ByStrategy["semantic"], ShouldEqual, 1)
			})

			Convey("And the average should be rounded to one decimal", func() {
				So(stats.AverageScore, ShouldEqual, 70.0)
			})
		})

		Convey("When the average does not divide evenly", func() {
			store.Record(ctx, "lexical", 70.0)
			store.Record(ctx, "lexical", 75.5)

			stats := store.Stats(ctx)
			So(stats.AverageScore, ShouldEqual, 72.8)
		})

		Convey("When snapshots are mutated by callers", func() {
			store.Record(ctx, "lexical", 50.0)

			stats := store.Stats(ctx)
			stats.ByStrategy["lexical"] = 999

			Convey("Then the store should be unaffected", func() {
				So(store.Stats(ctx).ByStrategy["lexical"], ShouldEqual, 1)
			})
		})

		Convey("When recording concurrently", func() {
			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					store.Record(ctx, "lexical", 50.0)
				}()
			}
			wg.Wait()

			So(store.Stats(ctx).TotalAnalyses, ShouldEqual, 50)
		})
	})
}
