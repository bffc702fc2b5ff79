package service

import (
	"crypto/tls"
	"time"

	"camp-records-backend/internal/config"

	"github.com/go-ldap/ldap/v3"
)

// DirectoryUser represents a subset of LDAP user attributes returned when
// searching the camp's staff directory
type DirectoryUser struct {
	DN          string `json:"dn"`
	DisplayName string `json:"displayName"`
	Mobile      string `json:"mobile"`
	SN          string `json:"sn"`
	Name        string `json:"name"`
	Mail        string `json:"mail"`
	GivenName   string `json:"givenName"`
}

// DirectoryService provides methods to search the camp's LDAP staff directory
type DirectoryService struct {
	cfg *config.Config
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	return &DirectoryService{cfg: cfg}
}

// SearchUsersByCN searches directory users by common name (cn prefix match)
func (s *DirectoryService) SearchUsersByCN(cn string) ([]DirectoryUser, error) {
	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort

	// Establish TLS connection to LDAP server
	l, err := ldap.DialTLS("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	// Set timeout
	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	// Bind with configured credentials
	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	filter := "(cn=" + ldap.EscapeFilter(cn) + "*)"
	attrs := []string{"displayName", "mobile", "sn", "name", "mail", "givenName"}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		attrs,
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}

	out := make([]DirectoryUser, 0, len(res.Entries))
	for _, e := range res.Entries {
		get := func(a string) string { return e.GetAttributeValue(a) }
		out = append(out, DirectoryUser{
			DN:          e.DN,
			DisplayName: get("displayName"),
			Mobile:      get("mobile"),
			SN:          get("sn"),
			Name:        get("name"),
			Mail:        get("mail"),
			GivenName:   get("givenName"),
		})
	}

	return out, nil
}
