package repository

import (
	"fmt"
	"net/http"
	"strings"

	"campushub/internal/apperrors"
	"campushub/internal/config"
	"campushub/internal/firebase"
	"campushub/internal/models"

	"cloud.google.com/go/firestore"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"

	firebaseAuth "firebase.google.com/go/auth"
)

// VerifySessionCookie verifies that the given session cookie is valid and returns the associated User if valid.
func (fr *FirebaseRepository) VerifySessionCookie(sessionCookie *http.Cookie) (*models.User, error) {
	decoded, err := fr.authClient.VerifySessionCookieAndCheckRevoked(firebase.Context, sessionCookie.Value)
	if err != nil {
		return nil, fmt.Errorf("error verifying cookie: %v\n", err)
	}

	user, err := fr.GetUserByID(decoded.UID)
	if err != nil {
		return nil, fmt.Errorf("error getting user from cookie: %v\n", err)
	}

	return user, nil
}

func (fr *FirebaseRepository) GetUserByID(id string) (*models.User, error) {
	if err := models.ValidateID(id); err != nil {
		return nil, err
	}

	fbUser, err := fr.authClient.GetUser(firebase.Context, id)
	if err != nil {
		return nil, apperrors.UserNotFoundError
	}

	// Check the Firebase user's email against the list of allowed domains.
	if len(config.Config.AllowedEmailDomains) > 0 {
		domain := strings.Split(fbUser.Email, "@")[1]
		if !contains(config.Config.AllowedEmailDomains, domain) {
			// invalid email domain, delete the user from Firebase Auth
			_ = fr.authClient.DeleteUser(firebase.Context, fbUser.UID)
			return nil, apperrors.InvalidEmailError
		}
	}

	profile, err := fr.getUserProfile(fbUser.UID)
	if err != nil {
		// no profile for the user found, create one. The first registered
		// user becomes the admin.
		role := models.RoleStudent
		if empty, err := fr.noUserProfilesExist(); err == nil && empty {
			role = models.RoleAdmin
		}
		profile = &models.Profile{
			DisplayName: fbUser.DisplayName,
			Email:       fbUser.Email,
			Role:        role,
		}
		_, err = fr.firestoreClient.Collection(models.FirestoreUserProfilesCollection).Doc(fbUser.UID).Set(firebase.Context, map[string]interface{}{
			"displayName": profile.DisplayName,
			"email":       profile.Email,
			"id":          fbUser.UID,
			"role":        string(profile.Role),
		})
		if err != nil {
			return nil, fmt.Errorf("error creating user profile: %v\n", err)
		}
	}

	return fbUserToUserRecord(fbUser, profile), nil
}

// GetUserByEmail retrieves the User associated with the given email.
func (fr *FirebaseRepository) GetUserByEmail(email string) (*models.User, error) {
	userID, err := fr.GetIDByEmail(email)
	if err != nil {
		return nil, err
	}

	return fr.GetUserByID(userID)
}

func (fr *FirebaseRepository) GetIDByEmail(email string) (string, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreUserProfilesCollection).Where("email", "==", email).Documents(firebase.Context)
	doc, err := iter.Next()
	if err == iterator.Done {
		return "", apperrors.UserNotFoundError
	}
	if err != nil {
		return "", err
	}

	data := doc.Data()
	return data["id"].(string), nil
}

func (fr *FirebaseRepository) UpdateUser(r *models.UpdateUserRequest) error {
	if r.DisplayName == "" {
		return apperrors.NewValidationError("display name must be a non-empty string")
	}

	_, err := fr.firestoreClient.Collection(models.FirestoreUserProfilesCollection).Doc(r.UserID).Update(firebase.Context, []firestore.Update{
		{
			Path:  "displayName",
			Value: r.DisplayName,
		},
		{
			Path:  "photoUrl",
			Value: r.PhotoURL,
		},
	})

	return err
}

// SetUserRoleByEmail assigns a role to the user registered under the given email.
func (fr *FirebaseRepository) SetUserRoleByEmail(r *models.SetRoleByEmailRequest) error {
	role, err := models.ParseRole(r.Role)
	if err != nil {
		return apperrors.NewValidationError("%v", err)
	}

	user, err := fr.GetUserByEmail(r.Email)
	if err != nil {
		return err
	}

	_, err = fr.firestoreClient.Collection(models.FirestoreUserProfilesCollection).Doc(user.ID).Update(firebase.Context, []firestore.Update{
		{
			Path:  "role",
			Value: string(role),
		},
	})

	return err
}

func (fr *FirebaseRepository) ListUsers() ([]*models.User, error) {
	var users []*models.User
	iter := fr.authClient.Users(firebase.Context, "")
	for {
		fbUser, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing users: %s\n", err)
		}

		profile, err := fr.getUserProfile(fbUser.UID)
		if err != nil {
			continue // user has not completed registration yet
		}

		users = append(users, fbUserToUserRecord(fbUser.UserRecord, profile))
	}

	return users, nil
}

func (fr *FirebaseRepository) CreateUser(user *models.CreateUserRequest) (*models.User, error) {
	if err := user.Validate(); err != nil {
		return nil, apperrors.NewValidationError("%v", err)
	}

	// Create a user in Firebase Auth.
	u := (&firebaseAuth.UserToCreate{}).Email(user.Email).Password(user.Password).DisplayName(user.DisplayName)
	fbUser, err := fr.authClient.CreateUser(firebase.Context, u)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %v\n", err)
	}

	// Create a user profile in Firestore.
	profile := &models.Profile{
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Role:        models.RoleStudent,
	}
	_, err = fr.firestoreClient.Collection(models.FirestoreUserProfilesCollection).Doc(fbUser.UID).Set(firebase.Context, map[string]interface{}{
		"displayName": profile.DisplayName,
		"email":       profile.Email,
		"id":          fbUser.UID,
		"role":        string(profile.Role),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user profile: %v\n", err)
	}

	return fbUserToUserRecord(fbUser, profile), nil
}

func (fr *FirebaseRepository) DeleteUser(id string) error {
	// Delete account from Firebase Authentication.
	err := fr.authClient.DeleteUser(firebase.Context, id)
	if err != nil {
		return apperrors.DeleteUserError
	}

	// Delete profile from the user_profiles collection.
	_, err = fr.firestoreClient.Collection(models.FirestoreUserProfilesCollection).Doc(id).Delete(firebase.Context)
	if err != nil {
		return apperrors.DeleteUserError
	}

	return nil
}

// Helpers

// fbUserToUserRecord combines a Firebase UserRecord and a Profile into a User
func fbUserToUserRecord(fbUser *firebaseAuth.UserRecord, profile *models.Profile) *models.User {
	return &models.User{
		ID:                 fbUser.UID,
		Profile:            profile,
		Disabled:           fbUser.Disabled,
		CreationTimestamp:  fbUser.UserMetadata.CreationTimestamp,
		LastLogInTimestamp: fbUser.UserMetadata.LastLogInTimestamp,
	}
}

// getUserProfile fetches the Firestore profile for the given user ID. The
// stored role is normalized here, at the authentication boundary, so no other
// code ever sees a legacy or unknown role string.
func (fr *FirebaseRepository) getUserProfile(id string) (*models.Profile, error) {
	doc, err := fr.firestoreClient.Collection(models.FirestoreUserProfilesCollection).Doc(id).Get(firebase.Context)
	if err != nil {
		return nil, fmt.Errorf("no profile found for ID %v\n", id)
	}

	var profile models.Profile
	if err := mapstructure.Decode(doc.Data(), &profile); err != nil {
		return nil, fmt.Errorf("error destructuring document: %v", err)
	}

	role, err := models.ParseRole(string(profile.Role))
	if err != nil {
		return nil, fmt.Errorf("profile %v has invalid role: %v", id, err)
	}
	profile.Role = role

	return &profile, nil
}

// noUserProfilesExist reports whether the user_profiles collection is empty.
func (fr *FirebaseRepository) noUserProfilesExist() (bool, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreUserProfilesCollection).Limit(1).Documents(firebase.Context)
	_, err := iter.Next()
	if err == iterator.Done {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}
