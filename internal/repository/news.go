package repository

import (
	"context"
	"fmt"
	"time"

	"campushub/internal/apperrors"
	"campushub/internal/firebase"
	"campushub/internal/models"

	"cloud.google.com/go/firestore"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"
)

func (fr *FirebaseRepository) GetNewsByID(ID string) (*models.News, error) {
	var news models.News
	if err := fr.getDocument(models.FirestoreNewsCollection, ID, &news, apperrors.NewsNotFoundError); err != nil {
		return nil, err
	}
	news.ID = ID
	return &news, nil
}

func (fr *FirebaseRepository) CreateNews(c *models.CreateNewsRequest) (news *models.News, err error) {
	news = &models.News{
		Title:       c.Title,
		Body:        c.Body,
		AuthorID:    c.Author.ID,
		IsPublished: c.IsPublished,
		IsVisible:   false,
		CreatedAt:   time.Now(),
	}

	ref, _, err := fr.firestoreClient.Collection(models.FirestoreNewsCollection).Add(firebase.Context, map[string]interface{}{
		"title":       news.Title,
		"body":        news.Body,
		"authorID":    news.AuthorID,
		"isPublished": news.IsPublished,
		"isVisible":   news.IsVisible,
		"createdAt":   news.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating news item: %v", err)
	}
	news.ID = ref.ID

	return news, nil
}

func (fr *FirebaseRepository) EditNews(c *models.EditNewsRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreNewsCollection).Doc(c.NewsID).Update(firebase.Context, []firestore.Update{
		{Path: "title", Value: c.Title},
		{Path: "body", Value: c.Body},
		{Path: "isPublished", Value: c.IsPublished},
	})
	return err
}

func (fr *FirebaseRepository) DeleteNews(c *models.DeleteNewsRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreNewsCollection).Doc(c.NewsID).Delete(firebase.Context)
	return err
}

// SetNewsVisibility toggles the featured flag on a news item. The invariant
// is that at most one item is visible system-wide, so the check for another
// visible item and the write happen inside one transaction; a plain
// check-then-write would let two concurrent requests both pass the check.
func (fr *FirebaseRepository) SetNewsVisibility(c *models.SetNewsVisibilityRequest) error {
	col := fr.firestoreClient.Collection(models.FirestoreNewsCollection)
	ref := col.Doc(c.NewsID)

	return fr.firestoreClient.RunTransaction(firebase.Context, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			return apperrors.NewsNotFoundError
		}

		if c.IsVisible {
			iter := tx.Documents(col.Where("isVisible", "==", true))
			for {
				doc, err := iter.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					return err
				}
				if doc.Ref.ID != c.NewsID {
					return apperrors.NewConflictError("another news item is already visible", doc.Ref.ID)
				}
			}
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "isVisible", Value: c.IsVisible},
		})
	})
}

// ListNews returns news items. When includeUnpublished is false only
// published items are returned; admins pass true to see drafts too.
func (fr *FirebaseRepository) ListNews(includeUnpublished bool) ([]*models.News, error) {
	col := fr.firestoreClient.Collection(models.FirestoreNewsCollection)

	query := col.Query
	if !includeUnpublished {
		query = col.Where("isPublished", "==", true)
	}

	var items []*models.News
	iter := query.Documents(firebase.Context)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing news: %v", err)
		}

		var news models.News
		if err := mapstructure.Decode(doc.Data(), &news); err != nil {
			return nil, fmt.Errorf("error destructuring document: %v", err)
		}
		news.ID = doc.Ref.ID
		items = append(items, &news)
	}

	return items, nil
}
