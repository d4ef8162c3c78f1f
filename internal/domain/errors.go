package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNonTrouve             = errors.New("ressource non trouvée")
	ErrEntreeInvalide        = errors.New("entrée invalide")
	ErrNonAutorise           = errors.New("non autorisé")
	ErrIdentifiantsInvalides = errors.New("identifiants invalides")
)
