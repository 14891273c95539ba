// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dislo

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Rtol is the distance below which points are considered coincident
const Rtol = 1e-10

// ChunkSize is the number of observation points evaluated by each parallel task
//  Note: values smaller than 1 are taken as 1
var ChunkSize = 256

// checkBatch returns the number of points in coords
func checkBatch(coords []float64) (npts int, err error) {
	if len(coords)%3 != 0 {
		return 0, &BatchLengthError{len(coords)}
	}
	return len(coords) / 3, nil
}

// evalRange computes stresses for points [start, end) and writes them into field
func evalRange(src Source, coords, field []float64, start, end int) {
	for i := start; i < end; i++ {
		σ := src.StressAt(Vec3{coords[3*i], coords[3*i+1], coords[3*i+2]})
		copy(field[6*i:6*i+6], σ[:])
	}
}

// runBatch computes the stress field sequentially
//  Output: field -- 6 values per point; i.e. len(field) = 2 * len(coords)
func runBatch(src Source, coords []float64) (field []float64, err error) {
	npts, err := checkBatch(coords)
	if err != nil {
		return
	}
	field = make([]float64, 2*len(coords))
	evalRange(src, coords, field, 0, npts)
	return
}

// RunParallel computes the stress field using up to nworkers goroutines
//  Note: nworkers ≤ 0 means runtime.NumCPU(). The result is identical to src.Run(coords);
//        ctx is checked before each chunk of ChunkSize points
func RunParallel(ctx context.Context, src Source, coords []float64, nworkers int) (field []float64, err error) {
	npts, err := checkBatch(coords)
	if err != nil {
		return
	}
	if nworkers <= 0 {
		nworkers = runtime.NumCPU()
	}
	chunk := max(ChunkSize, 1)
	field = make([]float64, 2*len(coords))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(nworkers)
	for start := 0; start < npts; start += chunk {
		start, end := start, min(start+chunk, npts)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			evalRange(src, coords, field, start, end)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return
}

// Superpose computes the sum of the stress fields of all sources
func Superpose(ctx context.Context, srcs []Source, coords []float64, nworkers int) (field []float64, err error) {
	if _, err = checkBatch(coords); err != nil {
		return
	}
	field = make([]float64, 2*len(coords))
	for _, src := range srcs {
		f, e := RunParallel(ctx, src, coords, nworkers)
		if e != nil {
			return nil, e
		}
		for i := range field {
			field[i] += f[i]
		}
	}
	return
}
