package discovery

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"scooper/internal/domain"
	"scooper/internal/eventbus"
)

// Common errors.
var (
	ErrScanInProgress = errors.New("scan already in progress")
	ErrNoScoopRoot    = errors.New("scoop root not found")
)

// maxParallelBuckets bounds the number of buckets read at once
const maxParallelBuckets = 8

// DiscoveryService finds buckets and apps below a scoop root
type DiscoveryService interface {
	StartScan(ctx context.Context, root string) error
	StopScan()
}

// discoveryService is the concrete implementation
type discoveryService struct {
	bus        eventbus.EventBus
	mu         sync.Mutex
	isScanning bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewDiscoveryService creates a new discovery service that rescans root on request
func NewDiscoveryService(bus eventbus.EventBus, root string) DiscoveryService {
	ds := &discoveryService{
		bus: bus,
	}

	bus.Subscribe(eventbus.EventScanRequested, func(e eventbus.DomainEvent) {
		if err := ds.StartScan(context.Background(), root); err != nil {
			log.Printf("Rescan skipped: %v", err)
		}
	})

	return ds
}

// manifest holds the manifest fields the UI shows
type manifest struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Homepage    string `json:"homepage"`
}

// installInfo is the subset of apps/<name>/current/install.json we read
type installInfo struct {
	Bucket string `json:"bucket"`
}

// StartScan scans root in the background, publishing the results on the bus
func (ds *discoveryService) StartScan(ctx context.Context, root string) error {
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		err = fmt.Errorf("%w: %s", ErrNoScoopRoot, root)
		ds.bus.Publish(eventbus.ErrorEvent{Message: "Scoop directory not found", Err: err})
		return err
	}

	ds.mu.Lock()
	if ds.isScanning {
		ds.mu.Unlock()
		return ErrScanInProgress
	}
	ds.isScanning = true

	scanCtx, cancel := context.WithCancel(ctx)
	ds.cancelFunc = cancel
	ds.mu.Unlock()

	ds.bus.Publish(eventbus.ScanStartedEvent{Root: root})

	ds.wg.Add(1)
	go func() {
		defer ds.wg.Done()

		buckets, apps, err := Scan(scanCtx, root)

		ds.mu.Lock()
		ds.isScanning = false
		ds.cancelFunc = nil
		ds.mu.Unlock()
		cancel()

		if err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Printf("Error scanning %s: %v", root, err)
				ds.bus.Publish(eventbus.ErrorEvent{
					Message: fmt.Sprintf("Failed to scan %s", root),
					Err:     err,
				})
			}
			return
		}

		ds.bus.Publish(eventbus.AppsDiscoveredEvent{Buckets: buckets, Apps: apps})
		ds.bus.Publish(eventbus.ScanCompletedEvent{Buckets: len(buckets), Apps: len(apps)})
	}()

	return nil
}

// StopScan stops any ongoing scan
func (ds *discoveryService) StopScan() {
	ds.mu.Lock()
	if ds.cancelFunc != nil {
		ds.cancelFunc()
	}
	ds.mu.Unlock()

	ds.wg.Wait()
}

// Scan reads buckets and apps below root.
// Buckets come back sorted by name; apps installed from a known bucket are
// merged with that bucket's manifest entry.
func Scan(ctx context.Context, root string) ([]domain.Bucket, []domain.App, error) {
	buckets, err := listBuckets(filepath.Join(root, "buckets"))
	if err != nil {
		return nil, nil, err
	}

	perBucket := make([][]domain.App, len(buckets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelBuckets)

	for i := range buckets {
		g.Go(func() error {
			apps, err := readBucket(gctx, &buckets[i])
			if err != nil {
				return fmt.Errorf("bucket %s: %w", buckets[i].Name, err)
			}
			perBucket[i] = apps
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var apps []domain.App
	index := make(map[string]int)
	for _, bucketApps := range perBucket {
		for _, app := range bucketApps {
			index[appKey(app.Bucket, app.Name)] = len(apps)
			apps = append(apps, app)
		}
	}

	installed, err := readInstalled(ctx, filepath.Join(root, "apps"))
	if err != nil {
		return nil, nil, err
	}
	for _, app := range installed {
		if i, ok := index[appKey(app.Bucket, app.Name)]; ok {
			apps[i].Installed = true
			apps[i].Version = app.Version
			continue
		}
		apps = append(apps, app)
	}

	return buckets, apps, nil
}

func appKey(bucket, name string) string {
	return strings.ToLower(bucket) + "/" + strings.ToLower(name)
}

// listBuckets returns the directories below dir; a missing dir means no buckets
func listBuckets(dir string) ([]domain.Bucket, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read buckets: %w", err)
	}

	var buckets []domain.Bucket
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		buckets = append(buckets, domain.Bucket{Name: e.Name(), Path: filepath.Join(dir, e.Name())})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Name < buckets[j].Name
	})
	return buckets, nil
}

// readBucket reads every manifest of b and records the manifest count on it
func readBucket(ctx context.Context, b *domain.Bucket) ([]domain.App, error) {
	// Most buckets keep manifests in a bucket/ subdirectory, older ones at the top
	dir := filepath.Join(b.Path, "bucket")
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = b.Path
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	apps := make([]domain.App, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var m manifest
		if err := readJSON(file, &m); err != nil {
			// One broken manifest should not hide the rest of the bucket
			log.Printf("Skipping manifest %s: %v", file, err)
			continue
		}

		apps = append(apps, domain.App{
			Name:        strings.TrimSuffix(filepath.Base(file), ".json"),
			Version:     m.Version,
			Description: m.Description,
			Homepage:    m.Homepage,
			Bucket:      b.Name,
			Path:        file,
		})
	}

	b.Manifests = len(apps)
	return apps, nil
}

// readInstalled reads apps/<name>/current of every installed app
func readInstalled(ctx context.Context, dir string) ([]domain.App, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read installed apps: %w", err)
	}

	var apps []domain.App
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.IsDir() {
			continue
		}

		current := filepath.Join(dir, e.Name(), "current")
		var m manifest
		if err := readJSON(filepath.Join(current, "manifest.json"), &m); err != nil {
			continue
		}
		var inst installInfo
		if err := readJSON(filepath.Join(current, "install.json"), &inst); err != nil {
			log.Printf("No install info for %s: %v", e.Name(), err)
		}

		apps = append(apps, domain.App{
			Name:        e.Name(),
			Version:     m.Version,
			Description: m.Description,
			Homepage:    m.Homepage,
			Bucket:      inst.Bucket,
			Installed:   true,
			Path:        filepath.Join(current, "manifest.json"),
		})
	}

	return apps, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
