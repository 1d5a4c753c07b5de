// Package influx publishes composed characteristics to InfluxDB so tuning
// changes can be charted over time.
package influx

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	influxdb2_write "github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/influxdata/influxdb-client-go/v2/domain"
	"github.com/rs/zerolog"

	"github.com/trackforge/kartchar/internal/characteristics"
	"github.com/trackforge/kartchar/internal/characteristics/schema"
	"github.com/trackforge/kartchar/internal/config"
	"github.com/trackforge/kartchar/internal/geometry"
)

// Measurement is the measurement name of published records.
const Measurement = "kart_characteristics"

// PointWriter is the subset of the influx blocking write API the publisher
// needs.
type PointWriter interface {
	WritePoint(ctx context.Context, point ...*influxdb2_write.Point) error
}

// RecordPoint builds the point for one record: tag kart, one field per
// characteristic, plus gear_count, wheel_count and footprint_area when the
// wheels span an area.
func RecordPoint(name string, c *characteristics.Characteristics, at time.Time) *influxdb2_write.Point {
	p := influxdb2_write.NewPointWithMeasurement(Measurement).
		AddTag("kart", name).
		SetTime(at)

	for _, k := range schema.All() {
		p.AddField(k.String(), c.Get(k))
	}
	p.AddField("gear_count", c.GearCount())
	p.AddField("wheel_count", c.WheelCount())

	wheels := make([]geometry.Vec3, 0, c.WheelCount())
	for i := range c.WheelCount() {
		w, err := c.WheelPosition(i)
		if err != nil {
			break
		}
		wheels = append(wheels, w)
	}
	if fp, err := geometry.ComputeFootprint(wheels); err == nil {
		p.AddField("footprint_area", fp.Area)
	}
	return p
}

// Publisher writes records to InfluxDB, or to a gzipped line protocol
// backup file when InfluxDB is unreachable.
type Publisher struct {
	writer PointWriter
	backup io.WriteCloser
	log    zerolog.Logger
	close  func()
}

// NewPublisher creates a publisher writing to w.
func NewPublisher(w PointWriter, log zerolog.Logger) *Publisher {
	return &Publisher{writer: w, log: log}
}

// NewBackupPublisher creates a publisher that appends line protocol to w.
func NewBackupPublisher(w io.WriteCloser, log zerolog.Logger) *Publisher {
	return &Publisher{backup: w, log: log}
}

// Publish writes one point for the record.
func (p *Publisher) Publish(ctx context.Context, name string, c *characteristics.Characteristics, at time.Time) error {
	point := RecordPoint(name, c, at)

	if p.writer != nil {
		if err := p.writer.WritePoint(ctx, point); err != nil {
			return fmt.Errorf("write point for %s: %w", name, err)
		}
		p.log.Debug().Str("kart", name).Msg("Published characteristics to InfluxDB")
		return nil
	}

	if p.backup == nil {
		return errors.New("influxDB client not initialized and backup writer not available")
	}
	lineProtocol := influxdb2_write.PointToLineProtocol(point, time.Nanosecond)
	if _, err := p.backup.Write([]byte(lineProtocol)); err != nil {
		return fmt.Errorf("error writing to InfluxDB backup file: %w", err)
	}
	return nil
}

// Close flushes the backup file and releases the client.
func (p *Publisher) Close() error {
	var err error
	if p.backup != nil {
		err = p.backup.Close()
	}
	if p.close != nil {
		p.close()
	}
	return err
}

// Connect creates a publisher from cfg. When the server does not answer a
// ping the publisher falls back to a gzipped backup file at backupPath.
func Connect(ctx context.Context, cfg config.InfluxConfig, backupPath string, log zerolog.Logger) (*Publisher, error) {
	if !cfg.Enabled {
		return nil, errors.New("influx.enabled is false")
	}

	client := influxdb2.NewClient(cfg.URL, cfg.Token)

	running, err := client.Ping(ctx)
	if err != nil || !running {
		client.Close()
		log.Info().Str("backupPath", backupPath).Msg("Failed to initialize InfluxDB client, writing to backup file")
		return openBackup(backupPath, log)
	}

	if err := ensureBucket(ctx, client, cfg, log); err != nil {
		client.Close()
		return nil, err
	}

	pub := NewPublisher(client.WriteAPIBlocking(cfg.Org, cfg.Bucket), log)
	pub.close = client.Close
	log.Info().Str("bucket", cfg.Bucket).Msg("InfluxDB client initialized")
	return pub, nil
}

func openBackup(path string, log zerolog.Logger) (*Publisher, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("error creating backup file: %w", err)
	}
	return NewBackupPublisher(&gzipFile{Writer: gzip.NewWriter(file), file: file}, log), nil
}

type gzipFile struct {
	*gzip.Writer
	file *os.File
}

func (g *gzipFile) Close() error {
	return errors.Join(g.Writer.Close(), g.file.Close())
}

// ensureBucket creates the organization and bucket when missing.
func ensureBucket(ctx context.Context, client influxdb2.Client, cfg config.InfluxConfig, log zerolog.Logger) error {
	org, err := client.OrganizationsAPI().FindOrganizationByName(ctx, cfg.Org)
	if err != nil {
		log.Info().Str("org", cfg.Org).Msg("Organization not found, creating")
		org, err = client.OrganizationsAPI().CreateOrganizationWithName(ctx, cfg.Org)
		if err != nil {
			return fmt.Errorf("create organization %s: %w", cfg.Org, err)
		}
	}

	if _, err := client.BucketsAPI().FindBucketByName(ctx, cfg.Bucket); err == nil {
		return nil
	}
	log.Info().Str("bucket", cfg.Bucket).Msg("Bucket not found, creating")

	rule := domain.RetentionRuleTypeExpire
	_, err = client.BucketsAPI().CreateBucketWithName(ctx, org, cfg.Bucket, domain.RetentionRule{
		Type:         &rule,
		EverySeconds: 60 * 60 * 24 * 365, // 1 year
	})
	if err != nil {
		return fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
	}
	return nil
}
