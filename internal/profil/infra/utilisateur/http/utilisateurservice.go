package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/klwxsrx/securite-service/internal/profil/app/utilisateur"
	"github.com/klwxsrx/securite-service/internal/profil/domain"
	pkghttp "github.com/klwxsrx/securite-service/pkg/http"
	"github.com/klwxsrx/securite-service/pkg/pagination"
)

const searchUtilisateursPath = "/utilisateur/search"

type utilisateurService struct {
	client pkghttp.Client
}

func NewUtilisateurService(client pkghttp.Client) utilisateur.Service {
	return utilisateurService{client: client}
}

// FindByProfil walks every page of the search results.
func (s utilisateurService) FindByProfil(ctx context.Context, profilID domain.ProfilID) ([]*utilisateur.UtilisateurDto, error) {
	result := make([]*utilisateur.UtilisateurDto, 0)
	for page := 0; ; page++ {
		out, err := s.searchPage(ctx, profilID, page)
		if err != nil {
			return nil, err
		}

		result = append(result, out.Content...)
		if len(out.Content) == 0 || len(result) >= out.TotalElements {
			return result, nil
		}
	}
}

func (s utilisateurService) searchPage(
	ctx context.Context,
	profilID domain.ProfilID,
	page int,
) (*pagination.Page[*utilisateur.UtilisateurDto], error) {
	var out pagination.Page[*utilisateur.UtilisateurDto]
	resp, err := s.client.NewRequest(ctx).
		SetQueryParams(map[string]string{
			"profilId": strconv.FormatInt(int64(profilID), 10),
			"page":     strconv.Itoa(page),
			"size":     strconv.Itoa(pagination.MaxPageSize),
		}).
		SetResult(&out).
		Post(searchUtilisateursPath)
	if err != nil {
		return nil, fmt.Errorf("request utilisateur.search: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("request utilisateur.search: invalid status code %d", resp.StatusCode())
	}

	return &out, nil
}
