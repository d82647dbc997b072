package statistics

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/ocl-logistics/ocl-backend/app/models"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/cache"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/database"
)

const (
	CacheKeyPublishedPosts   = "statistics:news:published"
	CacheKeyTotalViews       = "statistics:news:views"
	CacheKeySubscribers      = "statistics:newsletter:subscribers"
	CacheKeyActiveShipments  = "statistics:shipments:in-transit"
	CacheExpiration          = 30 * time.Minute
)

// StatisticsData holds the counters shown on the public site.
type StatisticsData struct {
	PublishedPosts  int `json:"published_posts"`
	TotalViews      int `json:"total_views"`
	Subscribers     int `json:"subscribers"`
	ActiveShipments int `json:"active_shipments"`
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// UpdateCacheIfNeeded refreshes the cached counters when the refresh
// interval has elapsed.
func UpdateCacheIfNeeded() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	if time.Since(lastCacheUpdate) <= cacheUpdateInterval {
		return
	}

	if err := UpdateStatisticsCache(); err != nil {
		log.Printf("Error updating statistics cache: %v", err)
		return
	}
	lastCacheUpdate = time.Now()
}

// UpdateStatisticsCache recomputes all counters and stores them in the cache
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var publishedPosts int64
	if err := db.Model(&models.NewsPost{}).Where("published = ?", true).Count(&publishedPosts).Error; err != nil {
		return err
	}

	var totalViews int64
	if err := db.Model(&models.NewsPost{}).Select("COALESCE(SUM(views), 0)").Scan(&totalViews).Error; err != nil {
		return err
	}

	var subscribers int64
	if err := db.Model(&models.Subscriber{}).Count(&subscribers).Error; err != nil {
		return err
	}

	var activeShipments int64
	if err := db.Model(&models.Shipment{}).Where("status = ?", models.SHIPMENT_TRANSIT).Count(&activeShipments).Error; err != nil {
		return err
	}

	if err := cache.Set(CacheKeyPublishedPosts, strconv.FormatInt(publishedPosts, 10), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeyTotalViews, strconv.FormatInt(totalViews, 10), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeySubscribers, strconv.FormatInt(subscribers, 10), CacheExpiration); err != nil {
		return err
	}
	return cache.Set(CacheKeyActiveShipments, strconv.FormatInt(activeShipments, 10), CacheExpiration)
}

// GetStatistics returns the cached counters, refreshing the cache first when
// it has gone stale. Cache misses fall back to zero values rather than
// failing the request.
func GetStatistics() StatisticsData {
	UpdateCacheIfNeeded()

	data := StatisticsData{}
	if v, err := cache.GetInt(CacheKeyPublishedPosts); err == nil {
		data.PublishedPosts = v
	}
	if v, err := cache.GetInt(CacheKeyTotalViews); err == nil {
		data.TotalViews = v
	}
	if v, err := cache.GetInt(CacheKeySubscribers); err == nil {
		data.Subscribers = v
	}
	if v, err := cache.GetInt(CacheKeyActiveShipments); err == nil {
		data.ActiveShipments = v
	}
	return data
}
