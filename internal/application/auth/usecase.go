// Package auth gère la session de l'opérateur: un compte unique déclaré en
// configuration (hash bcrypt), un jeton JWT porté par un cookie.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/eisf/gestion-web/internal/domain"
	pkgjwt "github.com/eisf/gestion-web/pkg/jwt"
)

// JWTConfig paramètres du jeton de session.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase vérifie les identifiants et émet le jeton de session.
type UseCase struct {
	utilisateur    string
	motDePasseHash string // hash bcrypt, jamais le mot de passe en clair
	jwtCfg         JWTConfig
}

// NewUseCase construit le cas d'usage avec le compte opérateur configuré.
func NewUseCase(utilisateur, motDePasseHash string, jwtCfg JWTConfig) *UseCase {
	return &UseCase{
		utilisateur:    utilisateur,
		motDePasseHash: motDePasseHash,
		jwtCfg:         jwtCfg,
	}
}

// Login vérifie les identifiants et renvoie un jeton signé. La comparaison
// bcrypt se fait même si l'utilisateur ne correspond pas, pour un coût
// comparable dans les deux branches.
func (uc *UseCase) Login(utilisateur, motDePasse string) (string, error) {
	err := bcrypt.CompareHashAndPassword([]byte(uc.motDePasseHash), []byte(motDePasse))
	if utilisateur != uc.utilisateur || err != nil {
		return "", domain.ErrIdentifiantsInvalides
	}
	return pkgjwt.Generate(uc.jwtCfg.Secret, utilisateur, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}
