package service

import (
	"context"
	"errors"

	"github.com/bookdepot/library-service/internal/errs"
	"github.com/bookdepot/library-service/internal/model"
	"github.com/bookdepot/library-service/internal/repository"
)

func (s *Service) CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.Author, error) {
	ts := now()
	author := model.Author{
		ID:        req.ID,
		Name:      req.Name,
		Surname:   req.Surname,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		if _, err := st.GetAuthorByName(ctx, author.Name, author.Surname); err == nil {
			return errs.ErrConflict
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		// duplicate id surfaces as a unique violation on insert
		return st.CreateAuthor(ctx, author)
	})
	if err != nil {
		return model.Author{}, err
	}
	return author, nil
}

func (s *Service) GetAuthor(ctx context.Context, id string) (model.Author, error) {
	return s.repo.GetAuthor(ctx, id)
}

func (s *Service) UpdateAuthor(ctx context.Context, id string, req model.PatchAuthorRequest) (model.Author, error) {
	var author model.Author
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		var err error
		if author, err = st.GetAuthor(ctx, id); err != nil {
			return err
		}
		if req.Name != nil {
			author.Name = *req.Name
		}
		if req.Surname != nil {
			author.Surname = *req.Surname
		}
		author.UpdatedAt = now()
		return st.UpdateAuthor(ctx, author)
	})
	if err != nil {
		return model.Author{}, err
	}
	return author, nil
}

func (s *Service) DeleteAuthor(ctx context.Context, id string) error {
	return s.repo.DeleteAuthor(ctx, id)
}

func (s *Service) CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (model.Category, error) {
	ts := now()
	category := model.Category{
		ID:        req.ID,
		Name:      req.Name,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		if _, err := st.GetCategoryByName(ctx, category.Name); err == nil {
			return errs.ErrConflict
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		return st.CreateCategory(ctx, category)
	})
	if err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (s *Service) GetCategory(ctx context.Context, id string) (model.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) UpdateCategory(ctx context.Context, id string, req model.PatchCategoryRequest) (model.Category, error) {
	var category model.Category
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		if other, err := st.GetCategoryByName(ctx, req.Name); err == nil && other.ID != id {
			return errs.ErrConflict
		} else if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		var err error
		if category, err = st.GetCategory(ctx, id); err != nil {
			return err
		}
		category.Name = req.Name
		category.UpdatedAt = now()
		return st.UpdateCategory(ctx, category)
	})
	if err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

// resolveSets matches requested author pairs and category names against
// existing records. Matching fewer records than requested means the request
// references something that does not exist.
func resolveSets(ctx context.Context, st repository.Store, authors []model.AuthorRef, categories []string) ([]model.Author, []model.Category, error) {
	matchedAuthors, err := st.MatchAuthors(ctx, authors)
	if err != nil {
		return nil, nil, err
	}
	if len(matchedAuthors) < len(authors) {
		return nil, nil, errs.ErrBadReference
	}
	matchedCategories, err := st.MatchCategories(ctx, categories)
	if err != nil {
		return nil, nil, err
	}
	if len(matchedCategories) < len(categories) {
		return nil, nil, errs.ErrBadReference
	}
	return matchedAuthors, matchedCategories, nil
}

func projectSets(pub *model.Publication, authors []model.Author, categories []model.Category) {
	pub.Authors = make([]model.AuthorRef, 0, len(authors))
	for _, a := range authors {
		pub.Authors = append(pub.Authors, model.AuthorRef{Name: a.Name, Surname: a.Surname})
	}
	pub.Categories = make([]string, 0, len(categories))
	for _, c := range categories {
		pub.Categories = append(pub.Categories, c.Name)
	}
}

func (s *Service) CreatePublication(ctx context.Context, req model.CreatePublicationRequest) (model.Publication, error) {
	ts := now()
	pub := model.Publication{
		ID:        req.ID,
		Title:     req.Title,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		if _, err := st.GetPublication(ctx, pub.ID); err == nil {
			return errs.ErrConflict
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		authors, categories, err := resolveSets(ctx, st, req.Authors, req.Categories)
		if err != nil {
			return err
		}
		if err := st.CreatePublication(ctx, pub); err != nil {
			return err
		}
		if err := st.ReplacePublicationAuthors(ctx, pub.ID, authorIDs(authors)); err != nil {
			return err
		}
		if err := st.ReplacePublicationCategories(ctx, pub.ID, categoryIDs(categories)); err != nil {
			return err
		}
		projectSets(&pub, authors, categories)
		return nil
	})
	if err != nil {
		return model.Publication{}, err
	}
	return pub, nil
}

func (s *Service) GetPublication(ctx context.Context, id string) (model.Publication, error) {
	pub, err := s.repo.GetPublication(ctx, id)
	if err != nil {
		return model.Publication{}, err
	}
	if pub.Authors, err = s.repo.GetPublicationAuthors(ctx, id); err != nil {
		return model.Publication{}, err
	}
	if pub.Categories, err = s.repo.GetPublicationCategories(ctx, id); err != nil {
		return model.Publication{}, err
	}
	if pub.Authors == nil {
		pub.Authors = []model.AuthorRef{}
	}
	if pub.Categories == nil {
		pub.Categories = []string{}
	}
	return pub, nil
}

// UpdatePublication replaces the author and category sets wholesale with the
// matched set; an empty list clears the relation.
func (s *Service) UpdatePublication(ctx context.Context, id string, req model.PatchPublicationRequest) (model.Publication, error) {
	var pub model.Publication
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		var err error
		if pub, err = st.GetPublication(ctx, id); err != nil {
			return err
		}
		authors, categories, err := resolveSets(ctx, st, req.Authors, req.Categories)
		if err != nil {
			return err
		}
		pub.Title = req.Title
		pub.UpdatedAt = now()
		if err := st.UpdatePublication(ctx, pub); err != nil {
			return err
		}
		if err := st.ReplacePublicationAuthors(ctx, id, authorIDs(authors)); err != nil {
			return err
		}
		if err := st.ReplacePublicationCategories(ctx, id, categoryIDs(categories)); err != nil {
			return err
		}
		projectSets(&pub, authors, categories)
		return nil
	})
	if err != nil {
		return model.Publication{}, err
	}
	return pub, nil
}

func (s *Service) DeletePublication(ctx context.Context, id string) error {
	return s.repo.DeletePublication(ctx, id)
}

func authorIDs(authors []model.Author) []string {
	ids := make([]string, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}
	return ids
}

func categoryIDs(categories []model.Category) []string {
	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	return ids
}

func (s *Service) CreateInstance(ctx context.Context, req model.CreateInstanceRequest) (model.Instance, error) {
	ts := now()
	instance := model.Instance{
		ID:            req.ID,
		Type:          req.Type,
		Publisher:     req.Publisher,
		Year:          req.Year,
		Status:        req.Status,
		PublicationID: req.PublicationID,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	if instance.Status == "" {
		instance.Status = model.InstanceAvailable
	}
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		if _, err := st.GetPublication(ctx, instance.PublicationID); err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return errs.ErrBadReference
			}
			return err
		}
		return st.CreateInstance(ctx, instance)
	})
	if err != nil {
		return model.Instance{}, err
	}
	return instance, nil
}

func (s *Service) GetInstance(ctx context.Context, id string) (model.Instance, error) {
	return s.repo.GetInstance(ctx, id)
}

func (s *Service) UpdateInstance(ctx context.Context, id string, req model.PatchInstanceRequest) (model.Instance, error) {
	var instance model.Instance
	err := s.repo.InTx(ctx, func(st repository.Store) error {
		var err error
		if instance, err = st.GetInstance(ctx, id); err != nil {
			return err
		}
		if req.PublicationID != nil {
			if _, err := st.GetPublication(ctx, *req.PublicationID); err != nil {
				return err
			}
			instance.PublicationID = *req.PublicationID
		}
		if req.Type != nil {
			instance.Type = *req.Type
		}
		if req.Publisher != nil {
			instance.Publisher = *req.Publisher
		}
		if req.Year != nil {
			instance.Year = *req.Year
		}
		if req.Status != nil {
			instance.Status = *req.Status
		}
		instance.UpdatedAt = now()
		return st.UpdateInstance(ctx, instance)
	})
	if err != nil {
		return model.Instance{}, err
	}
	return instance, nil
}

func (s *Service) DeleteInstance(ctx context.Context, id string) error {
	return s.repo.DeleteInstance(ctx, id)
}
