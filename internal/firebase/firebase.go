package firebase

import (
	"context"
	"fmt"

	firebaseSDK "firebase.google.com/go"
	"google.golang.org/api/option"
)

// App is a global variable to hold the initialized Firebase App object
var App *firebaseSDK.App
var Context context.Context

// Initialize creates the Firebase App from the service account file at credentialsFile. It must be
// called before any Firebase-backed repository or session resolver is created.
func Initialize(ctx context.Context, credentialsFile string) error {
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebaseSDK.NewApp(ctx, nil, opt)
	if err != nil {
		return fmt.Errorf("error initializing Firebase app: %v", err)
	}

	App = app
	Context = ctx
	return nil
}
