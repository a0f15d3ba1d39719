package demo

import "golang.org/x/sync/errgroup"

// nested is the three-level loop demo: a(n) runs n iterations, each one
// calling b on the remaining count, which calls c in the same way. Both the
// functions and their loop bodies are scopes.
func (r *runner) nested() error {
	defer r.p.Enter("main").Exit()
	return r.a(r.cfg.Counter)
}

func (r *runner) a(x int) error {
	defer r.p.Enter("a").Exit()
	for ; x > 0; x-- {
		if err := r.loop(func() error { return r.b(x - 1) }); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) b(x int) error {
	defer r.p.Enter("b").Exit()
	for ; x > 0; x-- {
		if err := r.loop(func() error { return r.c(x - 1) }); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) c(x int) error {
	defer r.p.Enter("c").Exit()
	for ; x > 0; x-- {
		if err := r.loop(nil); err != nil {
			return err
		}
	}
	return nil
}

// loop is one loop body: a unit of work followed by the inner call.
func (r *runner) loop(inner func() error) error {
	defer r.p.Enter("loop").Exit()
	if err := r.work(); err != nil {
		return err
	}
	if inner == nil {
		return nil
	}
	return inner()
}

// recursion descends Counter levels; every level is a distinct path.
func (r *runner) recursion() error {
	return r.descend(r.cfg.Counter)
}

func (r *runner) descend(depth int) error {
	defer r.p.Enter("descend").Exit()
	if err := r.work(); err != nil {
		return err
	}
	if depth <= 1 {
		return nil
	}
	return r.descend(depth - 1)
}

// frames simulates a render loop. Samples are cleared at the start of every
// frame but the first, so the report shows only the last frame while the
// enclosing loop scope stays open across clears.
func (r *runner) frames() error {
	defer r.p.Enter("frames").Exit()
	for i := range r.cfg.Frames {
		if i > 0 {
			r.p.Clear()
		}
		if err := r.frame(); err != nil {
			return err
		}
		r.cfg.Logger.Debug().Int("frame", i).Msg("frame done")
	}
	return nil
}

func (r *runner) frame() error {
	defer r.p.Enter("frame").Exit()
	if err := r.step("update", 1); err != nil {
		return err
	}
	if err := r.step("render", 2); err != nil {
		return err
	}
	// Presenting waits on the display and is not CPU cost.
	r.p.Pause(true)
	defer r.p.Pause(false)
	return r.step("present", 1)
}

func (r *runner) step(label string, units int) error {
	defer r.p.Enter(label).Exit()
	for range units {
		if err := r.work(); err != nil {
			return err
		}
	}
	return nil
}

// workers runs the nested demo on several goroutines at once; each
// goroutine records into its own partition.
func (r *runner) workers() error {
	g, ctx := errgroup.WithContext(r.ctx)
	for range r.cfg.Workers {
		w := &runner{ctx: ctx, p: r.p, cfg: r.cfg, sleep: r.sleep}
		g.Go(func() error {
			defer w.p.Enter("worker").Exit()
			return w.a(w.cfg.Counter)
		})
	}
	return g.Wait()
}
