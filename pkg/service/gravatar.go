/*
Package service composes identity normalization, profile projection and avatar
selection on top of the Gravatar collaborators. Every call is self-contained;
the Service holds nothing but its collaborators.
*/
package service

import (
	"context"
	stderrors "errors"

	"github.com/charmbracelet/log"
	"github.com/theapemachine/mcp-server-gravatar/pkg/avatar"
	errors "github.com/theapemachine/mcp-server-gravatar/pkg/errors"
	"github.com/theapemachine/mcp-server-gravatar/pkg/identity"
	"github.com/theapemachine/mcp-server-gravatar/pkg/profile"
	"golang.org/x/sync/errgroup"
)

type ProfileFetcher interface {
	GetProfile(ctx context.Context, key string) (profile.Document, error)
}

type AvatarLister interface {
	ListAvatars(ctx context.Context, selectedKey string) ([]avatar.Record, error)
}

type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) (avatar.Image, error)
}

/*
Gravatar is the full collaborator set, satisfied by *gravatar.Client.
*/
type Gravatar interface {
	ProfileFetcher
	AvatarLister
	ImageFetcher
}

type Service struct {
	profiles ProfileFetcher
	avatars  AvatarLister
	images   ImageFetcher
}

func New(profiles ProfileFetcher, avatars AvatarLister, images ImageFetcher) *Service {
	return &Service{profiles: profiles, avatars: avatars, images: images}
}

func NewFromClient(client Gravatar) *Service {
	return New(client, client, client)
}

/*
ProfileByHash fetches a profile. A profile that does not exist yields a nil
document and no error.
*/
func (svc *Service) ProfileByHash(ctx context.Context, key string) (profile.Document, error) {
	if key == "" {
		return nil, errors.InvalidInput("profile identifier must not be empty")
	}

	doc, err := svc.profiles.GetProfile(ctx, key)
	if stderrors.Is(err, errors.ErrNotFound) {
		log.Debug("profile not found", "key", key)
		return nil, nil
	}

	return doc, err
}

func (svc *Service) ProfileByEmail(ctx context.Context, email string) (profile.Document, error) {
	key, err := identity.Normalize(email)
	if err != nil {
		return nil, err
	}

	return svc.ProfileByHash(ctx, key)
}

/*
FieldByHash fetches the profile once and projects one field from it. A missing
profile projects like an empty document.
*/
func (svc *Service) FieldByHash(ctx context.Context, key, field string) (profile.Value, error) {
	if field == "" {
		return profile.Value{}, errors.InvalidInput("field must not be empty")
	}

	doc, err := svc.ProfileByHash(ctx, key)
	if err != nil {
		return profile.Value{}, err
	}

	return profile.Project(doc, field), nil
}

func (svc *Service) FieldByEmail(ctx context.Context, email, field string) (profile.Value, error) {
	key, err := identity.Normalize(email)
	if err != nil {
		return profile.Value{}, err
	}

	return svc.FieldByHash(ctx, key, field)
}

/*
Avatars lists the account's avatars, optionally marking the one selected for
selectedKey. Not found yields an empty list.
*/
func (svc *Service) Avatars(ctx context.Context, selectedKey string) ([]avatar.Record, error) {
	records, err := svc.avatars.ListAvatars(ctx, selectedKey)
	if stderrors.Is(err, errors.ErrNotFound) {
		return []avatar.Record{}, nil
	}
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []avatar.Record{}
	}

	return records, nil
}

/*
AvatarsAsImages fetches the image of every avatar that has a URL. The fetches
run concurrently; the result keeps list order and the first failure fails the
whole call.
*/
func (svc *Service) AvatarsAsImages(ctx context.Context, selectedKey string) ([]avatar.Image, error) {
	records, err := svc.Avatars(ctx, selectedKey)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(records))
	for _, record := range records {
		if record.ImageURL != "" {
			urls = append(urls, record.ImageURL)
		}
	}

	images := make([]avatar.Image, len(urls))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, url := range urls {
		eg.Go(func() error {
			image, err := svc.images.FetchImage(egCtx, url)
			if err != nil {
				return err
			}
			images[i] = image
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return images, nil
}

/*
SelectedAvatarImage resolves the avatar selected for email and fetches its
image. It returns false when no avatar is selected or the selected one has no
URL.
*/
func (svc *Service) SelectedAvatarImage(ctx context.Context, email string) (avatar.Image, bool, error) {
	key, err := identity.Normalize(email)
	if err != nil {
		return avatar.Image{}, false, err
	}

	records, err := svc.Avatars(ctx, key)
	if err != nil {
		return avatar.Image{}, false, err
	}

	selected, ok := avatar.SelectActive(records)
	if !ok || selected.ImageURL == "" {
		log.Debug("no selected avatar", "avatars", len(records))
		return avatar.Image{}, false, nil
	}

	image, err := svc.images.FetchImage(ctx, selected.ImageURL)
	if err != nil {
		return avatar.Image{}, false, err
	}

	return image, true, nil
}
