package helper

import (
	"log"
	"time"

	"cinema_reservation/database"
	"cinema_reservation/model"

	"github.com/go-co-op/gocron/v2"
)

var movieScheduler gocron.Scheduler

// AutoUpdateMovieStatus flips COMING_SOON movies to NOW_SHOWING once
// their release date arrives. Runs daily but is safe to call anytime.
func AutoUpdateMovieStatus() {
	db := database.DB
	today := time.Now().Truncate(24 * time.Hour)

	var movies []model.Movie
	err := db.Where("status = ?", model.MovieComingSoon).Find(&movies).Error
	if err != nil {
		log.Printf("movie status scan: %v", err)
		return
	}

	for _, movie := range movies {
		release := movie.ReleaseDate.Truncate(24 * time.Hour)
		if release.After(today) {
			continue
		}
		movie.Status = model.MovieNowShowing
		if err := db.Save(&movie).Error; err != nil {
			log.Printf("movie status update %q: %v", movie.Title, err)
			continue
		}
		log.Printf("movie %q is now showing", movie.Title)
	}
}

// StartMovieStatusScheduler runs AutoUpdateMovieStatus shortly after
// midnight every day.
func StartMovieStatusScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	movieScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateMovieStatus),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("movie status scheduler started")
}
