// Command simulator serves a local stand-in for the Open Notify position
// endpoint. It synthesizes a circular-orbit ground track so the tracker can
// be exercised without internet access, including the API's quirk of
// serializing coordinates as strings.
package main

import (
	"flag"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/charan-271/ISS-Tracker/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	orbitPeriod = 92*time.Minute + 54*time.Second // one revolution
	inclination = 51.6                            // degrees
	degPerDay   = 360.0                           // earth rotation under the orbit
)

type groundTrack struct {
	epoch time.Time
}

// at returns the sub-satellite point for a circular orbit at time t.
func (g groundTrack) at(t time.Time) (lat, lon float64) {
	elapsed := t.Sub(g.epoch).Seconds()
	phase := 2 * math.Pi * elapsed / orbitPeriod.Seconds()

	incRad := inclination * math.Pi / 180
	lat = math.Asin(math.Sin(incRad)*math.Sin(phase)) * 180 / math.Pi

	// Longitude advances with the orbit and regresses with earth rotation.
	lon = math.Atan2(math.Cos(incRad)*math.Sin(phase), math.Cos(phase)) * 180 / math.Pi
	lon -= degPerDay * elapsed / (24 * 3600)
	lon = math.Mod(lon+540, 360) - 180 // wrap to [-180, 180)
	return lat, lon
}

func main() {
	port := flag.String("port", "8081", "listen port")
	flag.Parse()

	log := logger.Get(logger.InfoLevel)
	track := groundTrack{epoch: time.Now()}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/iss-now.json", func(c *gin.Context) {
		now := time.Now()
		lat, lon := track.at(now)
		// Coordinates are strings, matching the live API's payload shape.
		c.JSON(http.StatusOK, gin.H{
			"message":   "success",
			"timestamp": now.Unix(),
			"iss_position": gin.H{
				"latitude":  fmt.Sprintf("%.4f", lat),
				"longitude": fmt.Sprintf("%.4f", lon),
			},
		})
	})

	log.Infow("position simulator listening", "port", *port)
	if err := r.Run(":" + *port); err != nil {
		log.Fatalw("simulator stopped", "err", err)
	}
}
