package firebase

import (
	"context"
	"log"

	"campushub/internal/config"

	firebaseSDK "firebase.google.com/go"
	"google.golang.org/api/option"
)

// App is a global variable to hold the initialized Firebase App object
var App *firebaseSDK.App
var Context context.Context

// Initialize creates the Firebase App using the credentials file from the
// server configuration. Must be called once, before the repository is created.
func Initialize() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.Config.FirebaseCredentialsFile)
	app, err := firebaseSDK.NewApp(ctx, nil, opt)
	if err != nil {
		log.Panicf("error initializing Firebase app: %v\n", err)
	}

	App = app
	Context = ctx
}
