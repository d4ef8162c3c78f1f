package entity

// Client représente un client de l'entreprise.
type Client struct {
	ID         int64  `json:"id"`
	NomComplet string `json:"nom_complet"`
	Email      string `json:"email"`
	Telephone  string `json:"telephone"`
	Adresse    string `json:"adresse"`
	NumFiscal  string `json:"num_fiscal"`
}

// NouveauClient est le corps de la requête de création d'un client.
type NouveauClient struct {
	NomComplet string `json:"nom_complet"`
	Email      string `json:"email"`
	Telephone  string `json:"telephone"`
	Adresse    string `json:"adresse"`
	NumFiscal  string `json:"num_fiscal"`
}
