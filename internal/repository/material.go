package repository

import (
	"fmt"
	"time"

	"campushub/internal/apperrors"
	"campushub/internal/firebase"
	"campushub/internal/models"

	"cloud.google.com/go/firestore"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"
)

func (fr *FirebaseRepository) GetMaterialByID(ID string) (*models.CourseMaterial, error) {
	var material models.CourseMaterial
	if err := fr.getDocument(models.FirestoreMaterialsCollection, ID, &material, apperrors.MaterialNotFoundError); err != nil {
		return nil, err
	}
	material.ID = ID
	return &material, nil
}

func (fr *FirebaseRepository) CreateMaterial(c *models.CreateMaterialRequest) (material *models.CourseMaterial, err error) {
	material = &models.CourseMaterial{
		CourseID:     c.CourseID,
		Title:        c.Title,
		Description:  c.Description,
		FileURL:      c.FileURL,
		UploadedByID: c.UploadedBy.ID,
		CreatedAt:    time.Now(),
	}

	ref, _, err := fr.firestoreClient.Collection(models.FirestoreMaterialsCollection).Add(firebase.Context, map[string]interface{}{
		"courseID":     material.CourseID,
		"title":        material.Title,
		"description":  material.Description,
		"fileUrl":      material.FileURL,
		"uploadedByID": material.UploadedByID,
		"createdAt":    material.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating material: %v", err)
	}
	material.ID = ref.ID

	return material, nil
}

func (fr *FirebaseRepository) EditMaterial(c *models.EditMaterialRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreMaterialsCollection).Doc(c.MaterialID).Update(firebase.Context, []firestore.Update{
		{Path: "title", Value: c.Title},
		{Path: "description", Value: c.Description},
		{Path: "fileUrl", Value: c.FileURL},
	})
	return err
}

func (fr *FirebaseRepository) DeleteMaterial(c *models.DeleteMaterialRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreMaterialsCollection).Doc(c.MaterialID).Delete(firebase.Context)
	return err
}

func (fr *FirebaseRepository) ListMaterialsForCourse(courseID string) ([]*models.CourseMaterial, error) {
	var materials []*models.CourseMaterial
	iter := fr.firestoreClient.Collection(models.FirestoreMaterialsCollection).Where("courseID", "==", courseID).Documents(firebase.Context)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing materials: %v", err)
		}

		var material models.CourseMaterial
		if err := mapstructure.Decode(doc.Data(), &material); err != nil {
			return nil, fmt.Errorf("error destructuring document: %v", err)
		}
		material.ID = doc.Ref.ID
		materials = append(materials, &material)
	}

	return materials, nil
}
