package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/chrisdamba/foodcatalog/internal/cloudwriter"
	"github.com/chrisdamba/foodcatalog/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

const parquetFileName = "restaurants.parquet"

// restaurantRow is the flat Parquet layout of a catalog record.
type restaurantRow struct {
	RunID       string  `parquet:"name=runId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Position    int64   `parquet:"name=position,type=INT64"`
	ID          string  `parquet:"name=id,type=BYTE_ARRAY,convertedtype=UTF8"`
	Name        string  `parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Address     string  `parquet:"name=address,type=BYTE_ARRAY,convertedtype=UTF8"`
	Phone       string  `parquet:"name=phone,type=BYTE_ARRAY,convertedtype=UTF8"`
	Description string  `parquet:"name=description,type=BYTE_ARRAY,convertedtype=UTF8"`
	Cuisine     string  `parquet:"name=cuisine,type=BYTE_ARRAY,convertedtype=UTF8"`
	Rating      float64 `parquet:"name=rating,type=DOUBLE"`
	PriceTier   string  `parquet:"name=priceTier,type=BYTE_ARRAY,convertedtype=UTF8"`
	OpenTime    string  `parquet:"name=openTime,type=BYTE_ARRAY,convertedtype=UTF8"`
	CloseTime   string  `parquet:"name=closeTime,type=BYTE_ARRAY,convertedtype=UTF8"`
	HoursRaw    string  `parquet:"name=hoursRaw,type=BYTE_ARRAY,convertedtype=UTF8"`
	Latitude    float64 `parquet:"name=latitude,type=DOUBLE"`
	Longitude   float64 `parquet:"name=longitude,type=DOUBLE"`
	Synthetic   bool    `parquet:"name=synthetic,type=BOOLEAN"`
}

func toRow(runID string, position int, r models.Restaurant) restaurantRow {
	return restaurantRow{
		RunID:       runID,
		Position:    int64(position),
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		Phone:       r.Phone,
		Description: r.Description,
		Cuisine:     r.Cuisine,
		Rating:      r.Rating,
		PriceTier:   r.PriceTier.Symbol(),
		OpenTime:    r.OpenTime,
		CloseTime:   r.CloseTime,
		HoursRaw:    r.HoursRaw,
		Latitude:    r.Coordinates.Lat,
		Longitude:   r.Coordinates.Lon,
		Synthetic:   r.Coordinates.Synthetic,
	}
}

// ParquetOutput writes restaurants.parquet locally, or uploads it to cloud
// storage when a provider is configured.
type ParquetOutput struct {
	basePath           string
	folder             string
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
	logger             *slog.Logger
}

func NewParquetOutput(ctx context.Context, config *models.OutputConfig, logger *slog.Logger) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: config.Path,
		folder:   config.Folder,
		logger:   logger,
	}

	switch config.CloudStorage.Provider {
	case "", "local":
	case "s3":
		factory, err := cloudwriter.NewS3WriterFactory(ctx, config.CloudStorage)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		p.cloudWriterFactory = factory
		p.cloudBucketName = config.CloudStorage.BucketName
	default:
		return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
	}

	return p, nil
}

func (p *ParquetOutput) openFile(ctx context.Context) (source.ParquetFile, string, error) {
	if p.cloudWriterFactory != nil {
		objectPath := path.Join(p.folder, parquetFileName)
		cw, err := p.cloudWriterFactory.NewWriter(ctx, p.cloudBucketName, objectPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		return NewCloudParquetFile(cw), "s3://" + p.cloudBucketName + "/" + objectPath, nil
	}

	dir := filepath.Join(p.basePath, p.folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, "", err
	}
	filePath := filepath.Join(dir, parquetFileName)
	fw, err := local.NewLocalFileWriter(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create local file writer: %w", err)
	}
	return fw, filePath, nil
}

func (p *ParquetOutput) WriteCatalog(ctx context.Context, catalog *models.Catalog) error {
	fw, location, err := p.openFile(ctx)
	if err != nil {
		return err
	}

	pw, err := writer.NewParquetWriter(fw, new(restaurantRow), 4)
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to create ParquetWriter: %w", err)
	}

	for i, r := range catalog.Restaurants {
		if err := pw.Write(toRow(catalog.RunID, i, r)); err != nil {
			fw.Close()
			return fmt.Errorf("failed to write record %s: %w", r.ID, err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	if err := fw.Close(); err != nil {
		return err
	}

	p.logger.Debug("parquet catalog written", "location", location, "rows", len(catalog.Restaurants))
	return nil
}

func (p *ParquetOutput) Close() error {
	return nil
}

// CloudParquetFile adapts a CloudWriter to the write-only subset of
// source.ParquetFile the Parquet writer uses.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cloudWriter cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cloudWriter}
}

// Open and Create return the receiver: the object is created by writing it.
func (c *CloudParquetFile) Open(string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Create(string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	default:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read([]byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (int, error) {
	n, err := c.cloudWriter.Write(p)
	c.offset += int64(n)
	return n, err
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
