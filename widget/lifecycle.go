package widget

// TooltipActivator attaches tooltip behavior to a mounted host element. The
// returned release func detaches it again and may be nil.
type TooltipActivator interface {
	ActivateTooltip(host any, opts TooltipOptions) (release func(), err error)
}

type TooltipActivatorFunc func(host any, opts TooltipOptions) (func(), error)

func (f TooltipActivatorFunc) ActivateTooltip(host any, opts TooltipOptions) (func(), error) {
	return f(host, opts)
}

// Lifecycle tracks the host element of a mounted button. Tooltips are
// activated on the mount transition only; later renders never touch them.
type Lifecycle struct {
	host    any
	mounted bool
	release func()
}

// Mount records host and activates the tooltip when p asks for one and an
// activator is available. Mounting an already mounted lifecycle does
// nothing. p.Tooltipper takes precedence over activator.
func (l *Lifecycle) Mount(host any, p Props, activator TooltipActivator) error {
	if l.mounted {
		return nil
	}
	l.host = host
	l.mounted = true

	if p.Tooltipper != nil {
		activator = p.Tooltipper
	}
	if activator == nil || (p.Tooltip == "" && p.TooltipOptions == nil) {
		return nil
	}

	release, err := activator.ActivateTooltip(host, TooltipOptionsFor(p))
	if err != nil {
		return err
	}
	l.release = release
	return nil
}

// Unmount releases the tooltip and the host reference.
func (l *Lifecycle) Unmount() {
	if l.release != nil {
		l.release()
	}
	l.host = nil
	l.release = nil
	l.mounted = false
}

func (l *Lifecycle) Mounted() bool {
	return l.mounted
}

func (l *Lifecycle) Host() any {
	return l.host
}

// TooltipOptionsFor returns the options handed to the activator. Text
// missing from the options falls back to the tooltip prop.
func TooltipOptionsFor(p Props) TooltipOptions {
	var opts TooltipOptions
	if p.TooltipOptions != nil {
		opts = *p.TooltipOptions
	}
	if opts.Tooltip == "" {
		opts.Tooltip = p.Tooltip
	}
	return opts
}
