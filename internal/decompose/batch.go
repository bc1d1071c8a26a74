package decompose

// batch.go: worker pool para descomponer varias tablas independientes
// (una por región, canal, tienda...) en paralelo.

import (
	"context"
	"runtime"

	"github.com/alejandrodnm/revfx/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Job es una tabla a descomponer, identificada por nombre.
type Job struct {
	Name     string
	Table    domain.Table
	Products []string
}

// Result es el resultado de un Job. Err lleva el error de precondición de esa tabla;
// un Job fallido no afecta a los demás.
type Result struct {
	Name      string
	Aggregate domain.Aggregate
	Err       error
}

// Batch descompone los jobs en paralelo y devuelve los resultados en el mismo orden.
// Si workers <= 0 usa runtime.NumCPU(). Los jobs que no llegan a empezar antes de
// cancelar el contexto quedan con Err = ctx.Err().
func (d *Decomposer) Batch(ctx context.Context, jobs []Job, workers int) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, max(len(jobs), 1))

	results := make([]Result, len(jobs))

	var g errgroup.Group
	g.SetLimit(workers)
	for idx, job := range jobs {
		g.Go(func() error {
			results[idx].Name = job.Name
			if err := ctx.Err(); err != nil {
				results[idx].Err = err
				return nil
			}
			agg, err := d.Decompose(job.Table, job.Products)
			if err != nil {
				d.log().Debug("batch job failed", "job", job.Name, "err", err)
			}
			results[idx].Aggregate = agg
			results[idx].Err = err
			return nil
		})
	}
	_ = g.Wait() // los errores viajan en cada Result

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	d.log().Debug("batch complete",
		"jobs", len(jobs),
		"failed", failed,
		"workers", workers,
	)
	return results
}
