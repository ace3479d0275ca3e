package commands

type RenderCmd struct {
	DataFlags   `embed:""`
	OutputFlags `embed:""`
}

func (r *RenderCmd) Run(ctx *Context) error {
	in, err := r.DataFlags.Input()
	if err != nil {
		return err
	}
	return r.OutputFlags.Write(ctx.Stdout, in)
}
