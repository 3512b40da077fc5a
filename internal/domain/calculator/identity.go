package calculator

import "strings"

// IdentifyClient extrai o nome do cliente e o ID da conta do primeiro nível da hierarquia
// de grupos, no formato "Cliente - 123456789012 > Grupo > ...".
func IdentifyClient(hierarchy string) (clientName, accountID string) {
	if !strings.Contains(hierarchy, " > ") {
		return "", ""
	}
	clientAccount := strings.TrimSpace(strings.SplitN(hierarchy, " > ", 2)[0])

	switch {
	case strings.Contains(clientAccount, " - "):
		parts := strings.Split(clientAccount, " - ")
		last := len(parts) - 1
		if len(parts) >= 3 {
			return strings.TrimSpace(strings.Join(parts[:last], " - ")), strings.TrimSpace(parts[last])
		}
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	case strings.Contains(clientAccount, " "):
		i := strings.LastIndex(clientAccount, " ")
		return strings.TrimSpace(clientAccount[:i]), strings.TrimSpace(clientAccount[i+1:])
	}

	return "", ""
}
