package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"unfold/internal/core"
	_ "unfold/internal/patterns/escape"
	_ "unfold/internal/patterns/flower"
	_ "unfold/internal/patterns/htree"
)

type job struct {
	pattern core.Pattern
	blend   core.Blend
}

func (j job) String() string {
	return fmt.Sprintf("%s %d->%d @%.2f", j.pattern, j.blend.Base, j.blend.Next, j.blend.Factor)
}

type result struct {
	job       job
	best      time.Duration
	mean      time.Duration
	white     int
	particles int
	err       error
}

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	tileWorkers := flag.Int("tile-workers", 1, "goroutines per escape-time render")
	repeat := flag.Int("repeat", 3, "renders per job")
	size := flag.Int("size", core.BufferSize, "buffer edge length")
	seed := flag.Int64("seed", 42, "particle seed")
	steps := flag.Int("steps", 2, "blend samples per level transition")
	out := flag.String("out", "", "directory to write one PNG per job (empty disables)")
	flag.Parse()

	if *repeat < 1 {
		*repeat = 1
	}
	if *steps < 1 {
		*steps = 1
	}
	if *out != "" {
		if err := os.MkdirAll(*out, 0o755); err != nil {
			log.Fatalf("create output dir: %v", err)
		}
	}

	var jobs []job
	for _, p := range core.Patterns() {
		for level := 0; level <= core.MaxLevel; level++ {
			jobs = append(jobs, job{pattern: p, blend: core.BlendOf(float64(level))})
			if level == core.MaxLevel {
				continue
			}
			for s := 1; s < *steps; s++ {
				l := float64(level) + float64(s)/float64(*steps)
				jobs = append(jobs, job{pattern: p, blend: core.BlendOf(l)})
			}
		}
	}

	fmt.Printf("Sweeping %d renders (%d workers, %d repeats, %dpx)\n", len(jobs), *workers, *repeat, *size)

	queue := make(chan job)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				results <- run(j, *size, core.Settings{Seed: *seed, Workers: *tileWorkers}, *repeat, *out)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobs {
			queue <- j
		}
		close(queue)
	}()

	start := time.Now()
	var all []result
	failed := 0
	for res := range results {
		if res.err != nil {
			log.Printf("%s: %v", res.job, res.err)
			failed++
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].job, all[j].job
		if a.pattern != b.pattern {
			return a.pattern < b.pattern
		}
		if a.blend.Base != b.blend.Base {
			return a.blend.Base < b.blend.Base
		}
		return a.blend.Factor < b.blend.Factor
	})

	fmt.Printf("%-18s %10s %10s %8s %9s\n", "render", "best", "mean", "white%", "particles")
	for _, res := range all {
		fmt.Printf("%-18s %10s %10s %7.2f%% %9d\n", res.job, res.best.Round(time.Microsecond),
			res.mean.Round(time.Microsecond), 100*float64(res.white)/float64(*size**size), res.particles)
	}
	fmt.Printf("Done in %s\n", time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}

func run(j job, size int, set core.Settings, repeat int, out string) result {
	res := result{job: j}
	factory, ok := core.Renderers()[j.pattern]
	if !ok {
		res.err = fmt.Errorf("render %s: %w", j.pattern, core.ErrUnknownPattern)
		return res
	}
	r := factory(set)
	buf := core.NewBuffer(size, size)

	var total time.Duration
	for i := 0; i < repeat; i++ {
		n := 0
		fx := core.EmitterFunc(func(float64, float64) { n++ })
		t0 := time.Now()
		r.Render(buf, j.blend, fx)
		d := time.Since(t0)
		total += d
		if i == 0 || d < res.best {
			res.best = d
		}
		res.particles = n
	}
	res.mean = total / time.Duration(repeat)

	pix := buf.Pix()
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 0 || pix[i+1] != 0 || pix[i+2] != 0 {
			res.white++
		}
	}

	if out != "" {
		name := fmt.Sprintf("%s-%d-%03d.png", j.pattern, j.blend.Base, int(j.blend.Factor*100))
		res.err = writePNG(filepath.Join(out, name), buf)
	}
	return res
}

func writePNG(path string, buf *core.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	if err := png.Encode(f, buf.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
