package store

import "github.com/Taha-HB/sit-council-system/internal/models"

// Demo roster. Credentials are plain text on purpose: real credential
// verification lives behind auth.CredentialVerifier and is out of scope.
func seedUsers() []models.User {
	return []models.User{
		{
			ID:        1,
			FirstName: "Ibrahim",
			LastName:  "Mohammed",
			Email:     "president@sit.edu",
			Role:      models.RolePresident,
			StudentID: "SIT2023001",
			Avatar:    "IM",
			Password:  "password123",
		},
		{
			ID:        2,
			FirstName: "Aisha",
			LastName:  "Abdullahi",
			Email:     "secretary@sit.edu",
			Role:      models.RoleSecretary,
			StudentID: "SIT2023002",
			Avatar:    "AA",
			Password:  "password123",
		},
		{
			ID:        3,
			FirstName: "Fatima",
			LastName:  "Bello",
			Email:     "vicepresident@sit.edu",
			Role:      models.RoleVicePresident,
			StudentID: "SIT2023003",
			Avatar:    "FB",
			Password:  "password123",
		},
		{
			ID:        4,
			FirstName: "Yusuf",
			LastName:  "Adam",
			Email:     "treasurer@sit.edu",
			Role:      models.RoleTreasurer,
			StudentID: "SIT2023004",
			Avatar:    "YA",
			Password:  "password123",
		},
		{
			ID:        5,
			FirstName: "Musa",
			LastName:  "Ibrahim",
			Email:     "member@sit.edu",
			Role:      models.RoleMember,
			StudentID: "SIT2023005",
			Avatar:    "MI",
			Password:  "password123",
		},
	}
}
