package repository

import (
	"fmt"
	"log"

	"campushub/internal/firebase"

	firebaseAuth "firebase.google.com/go/auth"

	"cloud.google.com/go/firestore"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var Repository *FirebaseRepository

// Initialize creates the package-level Repository. It must be called after
// firebase.Initialize and before the server starts accepting requests.
func Initialize() {
	var err error
	Repository, err = NewFirebaseRepository()
	if err != nil {
		log.Panicf("Error creating repository: %v\n", err)
	}

	log.Printf("✅ Successfully created Firebase repository client")
}

type FirebaseRepository struct {
	authClient      *firebaseAuth.Client
	firestoreClient *firestore.Client
}

func NewFirebaseRepository() (*FirebaseRepository, error) {
	fr := &FirebaseRepository{}

	authClient, err := firebase.App.Auth(firebase.Context)
	if err != nil {
		return nil, fmt.Errorf("Auth client error: %v\n", err)
	}
	fr.authClient = authClient

	firestoreClient, err := firebase.App.Firestore(firebase.Context)
	if err != nil {
		return nil, fmt.Errorf("Firestore client error: %v\n", err)
	}
	fr.firestoreClient = firestoreClient

	return fr, nil
}

// getDocument fetches a single document and decodes it into out. notFound is
// returned when the document does not exist so each caller maps to its own
// sentinel.
func (fr *FirebaseRepository) getDocument(collection, id string, out interface{}, notFound error) error {
	doc, err := fr.firestoreClient.Collection(collection).Doc(id).Get(firebase.Context)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return notFound
		}
		return err
	}

	if err := mapstructure.Decode(doc.Data(), out); err != nil {
		return fmt.Errorf("error destructuring document: %v", err)
	}
	return nil
}

func contains(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}

	return false
}

// toStringSlice converts a Firestore array value into a []string.
func toStringSlice(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
