package finance

import "github.com/contafacil/contafacil-backend/internal/core/domain"

// FlattenAccountTree walks the account forest depth-first and produces one
// path string per account ("Parent > Child > Grandchild"), parent before
// child. Every account is visited exactly once; accounts whose parent is not
// in the set are treated as roots. Output order is determined by the input
// slice order, so an unchanged account set flattens identically every time.
func FlattenAccountTree(accounts []domain.Account) []domain.FlattenedAccount {
	byID := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		byID[acc.AccountID] = acc
	}

	children := make(map[string][]domain.Account)
	var roots []domain.Account
	for _, acc := range accounts {
		if acc.ParentID == "" {
			roots = append(roots, acc)
			continue
		}
		if _, ok := byID[acc.ParentID]; !ok {
			roots = append(roots, acc)
			continue
		}
		children[acc.ParentID] = append(children[acc.ParentID], acc)
	}

	flattened := make([]domain.FlattenedAccount, 0, len(accounts))
	visited := make(map[string]bool, len(accounts))

	var walk func(acc domain.Account, path string, depth int)
	walk = func(acc domain.Account, path string, depth int) {
		if visited[acc.AccountID] {
			return
		}
		visited[acc.AccountID] = true

		fullPath := acc.Name
		if path != "" {
			fullPath = path + " > " + acc.Name
		}
		flattened = append(flattened, domain.FlattenedAccount{
			AccountID:   acc.AccountID,
			Path:        fullPath,
			AccountType: acc.AccountType,
			Depth:       depth,
		})
		for _, child := range children[acc.AccountID] {
			walk(child, fullPath, depth+1)
		}
	}

	for _, root := range roots {
		walk(root, "", 0)
	}
	return flattened
}

// IsSelfOrDescendant reports whether candidateParentID is accountID itself or
// one of its descendants. Assigning such a parent would close a cycle in the
// account tree, so updates use this to reject the parent before writing.
func IsSelfOrDescendant(accounts []domain.Account, accountID, candidateParentID string) bool {
	if candidateParentID == "" {
		return false
	}
	if candidateParentID == accountID {
		return true
	}

	parentOf := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		parentOf[acc.AccountID] = acc.ParentID
	}

	// Walk up from the candidate; hitting accountID means the candidate sits
	// below it. The seen set guards against pre-existing malformed chains.
	seen := make(map[string]bool, len(accounts))
	for current := candidateParentID; current != "" && !seen[current]; {
		seen[current] = true
		parent := parentOf[current]
		if parent == accountID {
			return true
		}
		current = parent
	}
	return false
}
