// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"slices"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"github.com/go-chi/chi/v5/middleware"
	"google.golang.org/genai"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/config"
	"github.com/curioswitch/peakplates/internal/file"
	"github.com/curioswitch/peakplates/internal/handler/acceptfriendrequest"
	"github.com/curioswitch/peakplates/internal/handler/addrecipe"
	"github.com/curioswitch/peakplates/internal/handler/declinefriendrequest"
	"github.com/curioswitch/peakplates/internal/handler/deleterecipe"
	"github.com/curioswitch/peakplates/internal/handler/estimatemacros"
	"github.com/curioswitch/peakplates/internal/handler/getnutrition"
	"github.com/curioswitch/peakplates/internal/handler/getprofile"
	"github.com/curioswitch/peakplates/internal/handler/getrecipe"
	"github.com/curioswitch/peakplates/internal/handler/listfavorites"
	"github.com/curioswitch/peakplates/internal/handler/listfriendrequests"
	"github.com/curioswitch/peakplates/internal/handler/listfriends"
	"github.com/curioswitch/peakplates/internal/handler/listrecipes"
	"github.com/curioswitch/peakplates/internal/handler/listshared"
	"github.com/curioswitch/peakplates/internal/handler/listtags"
	"github.com/curioswitch/peakplates/internal/handler/login"
	"github.com/curioswitch/peakplates/internal/handler/logmeal"
	"github.com/curioswitch/peakplates/internal/handler/removefriend"
	"github.com/curioswitch/peakplates/internal/handler/searchusers"
	"github.com/curioswitch/peakplates/internal/handler/sendfriendrequest"
	"github.com/curioswitch/peakplates/internal/handler/setgoals"
	"github.com/curioswitch/peakplates/internal/handler/setprofile"
	"github.com/curioswitch/peakplates/internal/handler/sharerecipe"
	"github.com/curioswitch/peakplates/internal/handler/signup"
	"github.com/curioswitch/peakplates/internal/handler/togglefavorite"
	"github.com/curioswitch/peakplates/internal/handler/togglelike"
	"github.com/curioswitch/peakplates/internal/image"
	"github.com/curioswitch/peakplates/internal/logging"
	"github.com/curioswitch/peakplates/internal/nutrition"
	"github.com/curioswitch/peakplates/internal/social"
	"github.com/curioswitch/peakplates/internal/usertime"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	if conf.Logging.Color {
		logging.SetupColor(os.Stderr, slog.LevelDebug)
	}

	mux := server.Mux(s)

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("main: create firebase auth client: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	storage, err := storage.NewGRPCClient(ctx)
	if err != nil {
		return fmt.Errorf("main: create storage client: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close storage client", "error", err)
		}
	}()
	publicBucket := conf.Google.Project + "-public"

	genAI, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		Project: conf.Google.Project,
	})
	if err != nil {
		return fmt.Errorf("main: create genai client: %w", err)
	}

	io := file.NewIO(storage, publicBucket)
	images := image.NewWriter(io, image.Options{
		MaxWidth:         conf.Images.MaxWidth,
		MaxEmbeddedBytes: conf.Images.MaxEmbeddedBytes,
	})
	graph := social.NewGraph(firestore)

	tracker := nutrition.NewTracker(ctx, nutrition.NewFirestoreStore(firestore), nutrition.Options{
		Workers:    conf.Nutrition.Workers,
		MaxRetries: conf.Nutrition.MaxRetries,
	})
	defer tracker.Close()

	fbMW := firebaseauth.NewMiddleware(fbAuth)
	userMW := auth.Middleware()

	mux.Use(middleware.Maybe(func(h http.Handler) http.Handler {
		return fbMW(userMW(h))
	}, func(r *http.Request) bool {
		return !slices.Contains(api.PublicProcedures, r.URL.Path)
	}))

	mux.Use(usertime.Middleware())

	api.HandleUnary(mux, api.SignupProcedure,
		signup.NewHandler(fbAuth, firestore, conf.Auth.EmailDomain).Signup)
	api.HandleUnary(mux, api.LoginProcedure,
		login.NewHandler(fbAuth, firestore, conf.Auth.EmailDomain).Login)
	api.HandleUnary(mux, api.ListTagsProcedure,
		listtags.NewHandler().ListTags)

	api.HandleUnary(mux, api.ListRecipesProcedure,
		listrecipes.NewHandler(firestore).ListRecipes)
	api.HandleUnary(mux, api.ListFavoritesProcedure,
		listfavorites.NewHandler(firestore).ListFavorites)
	api.HandleUnary(mux, api.GetRecipeProcedure,
		getrecipe.NewHandler(firestore).GetRecipe)
	api.HandleUnary(mux, api.AddRecipeProcedure,
		addrecipe.NewHandler(firestore, images).AddRecipe)
	api.HandleUnary(mux, api.DeleteRecipeProcedure,
		deleterecipe.NewHandler(firestore, io).DeleteRecipe)
	api.HandleUnary(mux, api.ToggleLikeProcedure,
		togglelike.NewHandler(firestore).ToggleLike)
	api.HandleUnary(mux, api.ToggleFavoriteProcedure,
		togglefavorite.NewHandler(firestore).ToggleFavorite)

	api.HandleUnary(mux, api.ShareRecipeProcedure,
		sharerecipe.NewHandler(graph).ShareRecipe)
	api.HandleUnary(mux, api.ListSharedProcedure,
		listshared.NewHandler(graph).ListShared)
	api.HandleUnary(mux, api.SearchUsersProcedure,
		searchusers.NewHandler(graph).SearchUsers)
	api.HandleUnary(mux, api.SendFriendRequestProcedure,
		sendfriendrequest.NewHandler(graph).SendFriendRequest)
	api.HandleUnary(mux, api.ListFriendRequestsProcedure,
		listfriendrequests.NewHandler(graph).ListFriendRequests)
	api.HandleUnary(mux, api.AcceptFriendRequestProcedure,
		acceptfriendrequest.NewHandler(graph).AcceptFriendRequest)
	api.HandleUnary(mux, api.DeclineFriendRequestProcedure,
		declinefriendrequest.NewHandler(graph).DeclineFriendRequest)
	api.HandleUnary(mux, api.ListFriendsProcedure,
		listfriends.NewHandler(graph).ListFriends)
	api.HandleUnary(mux, api.RemoveFriendProcedure,
		removefriend.NewHandler(graph).RemoveFriend)

	api.HandleUnary(mux, api.GetNutritionProcedure,
		getnutrition.NewHandler(tracker).GetNutrition)
	api.HandleUnary(mux, api.LogMealProcedure,
		logmeal.NewHandler(tracker).LogMeal)
	api.HandleUnary(mux, api.SetGoalsProcedure,
		setgoals.NewHandler(tracker).SetGoals)
	api.HandleUnary(mux, api.EstimateMacrosProcedure,
		estimatemacros.NewHandler(genAI.Models, firestore, conf.LLM.Model).EstimateMacros)

	api.HandleUnary(mux, api.GetProfileProcedure,
		getprofile.NewHandler(firestore).GetProfile)
	api.HandleUnary(mux, api.SetProfileProcedure,
		setprofile.NewHandler(firestore).SetProfile)

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
