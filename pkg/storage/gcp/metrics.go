// File: pkg/storage/gcp/metrics.go
package gcp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	monitoringpb "cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"google.golang.org/api/iterator"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const metricTimeWindow = 72 * time.Hour

// ErrMetricsNotFound indicates that the usage metrics could not be found within
// the queried time range. This often happens for new buckets that haven't
// reported metrics yet.
var ErrMetricsNotFound = errors.New("usage metrics not found in the monitoring window")

// BucketUsage returns the total stored bytes of a bucket as reported by the
// Cloud Monitoring API, aggregated over the metric window.
func (g *GCSStore) BucketUsage(ctx context.Context, bucketName string) (int64, error) {
	g.logger.Debug("fetching GCS bucket usage via Monitoring API", "bucket", bucketName)

	client, err := monitoring.NewMetricClient(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to create monitoring client: %w", err)
	}
	defer client.Close()

	endTime := time.Now()
	startTime := endTime.Add(-metricTimeWindow)

	req := &monitoringpb.ListTimeSeriesRequest{
		Name: fmt.Sprintf("projects/%s", g.projectID),
		Filter: fmt.Sprintf(
			`metric.type="storage.googleapis.com/storage/v2/total_bytes" AND resource.labels.bucket_name="%s"`,
			bucketName,
		),
		Interval: &monitoringpb.TimeInterval{
			StartTime: timestamppb.New(startTime),
			EndTime:   timestamppb.New(endTime),
		},
		Aggregation: &monitoringpb.Aggregation{
			AlignmentPeriod:  durationpb.New(metricTimeWindow),
			PerSeriesAligner: monitoringpb.Aggregation_ALIGN_MEAN,
		},
	}

	it := client.ListTimeSeries(ctx, req)
	resp, err := it.Next()
	if err == iterator.Done {
		return 0, ErrMetricsNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("error getting metric data: %w", err)
	}

	points := resp.GetPoints()
	if len(points) == 0 {
		return 0, ErrMetricsNotFound
	}

	return extractUsageValue(points[0].GetValue()), nil
}

func extractUsageValue(value *monitoringpb.TypedValue) int64 {
	switch v := value.GetValue().(type) {
	case *monitoringpb.TypedValue_Int64Value:
		return v.Int64Value
	case *monitoringpb.TypedValue_DoubleValue:
		return int64(math.Round(v.DoubleValue))
	default:
		return 0
	}
}
