package core

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ishworgurung/memfill/cfg"
)

// Buffer is the growable byte buffer the driver fills.
type Buffer interface {
	Len() int
	ReserveExact(n int) error
	AppendByte(b byte)
}

// Reporter shows the buffer length to the user.
type Reporter interface {
	Render(length int) error
}

// Driver fills a Buffer one byte at a time, reserving one cluster ahead at
// every cluster boundary and reporting right after each reservation.
type Driver struct {
	buf          Buffer
	reporter     Reporter
	clusterSize  int
	reservations int
	renders      int
	lg           zerolog.Logger
}

func New(buf Buffer, r Reporter, lg zerolog.Logger) *Driver {
	return &Driver{
		buf:         buf,
		reporter:    r,
		clusterSize: cfg.ClusterSize,
		lg:          lg,
	}
}

// Run keeps stepping until a step fails and returns that failure. There is
// no other way out.
func (d *Driver) Run() error {
	d.lg.Debug().Int("cluster_size", d.clusterSize).Msg("filling buffer")
	for {
		if err := d.Step(); err != nil {
			return err
		}
	}
}

// Step performs a single iteration of the fill loop. The boundary check
// happens before the append so that length 0 triggers the first
// reservation, and the status is flushed before the cluster's first byte
// is written.
func (d *Driver) Step() error {
	length := d.buf.Len()
	if length%d.clusterSize == 0 {
		d.reservations++
		if err := d.buf.ReserveExact(d.clusterSize); err != nil {
			return errors.Wrapf(err, "unable to allocate %d bytes in memory, did we run out of memory?", d.clusterSize)
		}
		d.renders++
		if err := d.reporter.Render(length); err != nil {
			return errors.Wrap(err, "unable to render buffer status")
		}
	}
	d.buf.AppendByte(cfg.FillByte)
	return nil
}

// Reservations is the number of reservations attempted so far.
func (d *Driver) Reservations() int { return d.reservations }

// Renders is the number of status renders attempted so far.
func (d *Driver) Renders() int { return d.renders }
