package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestStart(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"inline", 1, 1},
		{"several", 4, 4},
		{"default", 0, runtime.GOMAXPROCS(0)},
		{"negative", -3, runtime.GOMAXPROCS(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := Start(tt.workers)
			if got := pool.Workers(); got != tt.want {
				t.Fatalf("Workers() = %d, want %d", got, tt.want)
			}

			var count atomic.Int64
			for range 100 {
				pool.Do(func() { count.Add(1) })
			}
			pool.Wait(true)

			if got := count.Load(); got != 100 {
				t.Fatalf("ran %d jobs, want 100", got)
			}
		})
	}
}

func TestCancelTwice(t *testing.T) {
	pool := Start(2)
	pool.Cancel()
	pool.Cancel()
	pool.Wait(true)
}

func TestMap(t *testing.T) {
	in := make([]int, 50)
	for i := range in {
		in[i] = i
	}

	for _, workers := range []int{1, 3} {
		pool := Start(workers)

		got := Map(pool.Do, in, func(i, v int) int { return v * v })
		for i, v := range got {
			if v != i*i {
				t.Fatalf("workers=%d: result %d = %d, want %d", workers, i, v, i*i)
			}
		}

		// the pool stays usable after Map
		again := Map(pool.Do, []string{"a", "bb"}, func(_ int, s string) int { return len(s) })
		if again[0] != 1 || again[1] != 2 {
			t.Fatalf("workers=%d: second Map = %v", workers, again)
		}
		pool.Wait(true)
	}

	if got := Map(Start(2).Do, nil, func(int, int) int { return 0 }); len(got) != 0 {
		t.Fatalf("empty input gave %v", got)
	}
}
