package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"
	"github.com/strandsapp/backend/internal/middleware"
	"github.com/strandsapp/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis(s.baseContext())
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	c := cors.New(cors.Options{
		AllowedOrigins:   s.configs.ApiServer.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: c.Handler(s.router.Handler()),
	}

	log.Printf("Starting server on port: %s\n", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	authRouter := s.router.Branch()
	authRouter.Before(middleware.Authenticate())
	{
		// User API. Gin allows only one wildcard name per path position, so
		// every route binds the segment as :identifier; the profile endpoint
		// accepts a user id or username there, the follow endpoints expect a
		// username.
		router.GET(authRouter, "/user/:identifier", s.userDomain.GetUser)
		router.GET(authRouter, "/user/:identifier/followers", s.userDomain.GetFollowers)
		router.GET(authRouter, "/user/:identifier/following", s.userDomain.GetFollowing)
		router.POST(authRouter, "/user/:identifier/follow", s.userDomain.FollowUser)
		router.GET(authRouter, "/user/:identifier/checkFollow", s.userDomain.CheckFollow)

		// Activity API
		router.GET(authRouter, "/activity", s.activityDomain.GetList)
		router.PUT(authRouter, "/activity", s.activityDomain.MarkAllRead)
	}
}
