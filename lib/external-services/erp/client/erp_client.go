package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	erpapimodels "portal-backend/models/api/erp"
)

type Provider interface {
	Login(ctx context.Context) (sessionID string, err error)
	ListDrafts(ctx context.Context, sessionID string) ([]erpapimodels.Draft, error)
}

var Instance Provider

type impl struct {
	host      string
	user      string
	password  string
	companyDB string
}

func NewProvider(host, user, password, companyDB string) {
	Instance = &impl{
		host:      host,
		user:      user,
		password:  password,
		companyDB: companyDB,
	}
}

const (
	loginPath  string = "/b1s/v1/Login"
	draftsPath string = "/b1s/v1/Drafts?$filter=DocObjectCode eq 'oPurchaseRequest'"
)

func (i impl) Login(ctx context.Context) (string, error) {
	body, err := json.Marshal(erpapimodels.LoginRequest{
		CompanyDB: i.companyDB,
		UserName:  i.user,
		Password:  i.password,
	})
	if err != nil {
		return "", errors.Wrap(err, "login request encode failed")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.host+loginPath, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "login request build failed")
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "erp login call failed")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return "", errors.Errorf("erp login failed: %v (%v)", resp.StatusCode, string(payload))
	}
	result := erpapimodels.LoginResponse{}
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "login response decode failed")
	}
	return result.SessionID, nil
}

func (i impl) ListDrafts(ctx context.Context, sessionID string) ([]erpapimodels.Draft, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.host+draftsPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "drafts request build failed")
	}
	req.Header.Set("Cookie", fmt.Sprintf("B1SESSION=%s", sessionID))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erp drafts call failed")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return nil, errors.Errorf("erp drafts failed: %v (%v)", resp.StatusCode, string(payload))
	}
	result := erpapimodels.DraftListResponse{}
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "drafts response decode failed")
	}
	return result.Value, nil
}
