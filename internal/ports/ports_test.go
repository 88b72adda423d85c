package ports_test

import (
	"github.com/jsamuelsen11/home-service/internal/ports"
	"github.com/jsamuelsen11/home-service/mocks"
)

var (
	_ ports.HealthChecker  = (*mocks.MockHealthChecker)(nil)
	_ ports.HealthRegistry = (*mocks.MockHealthRegistry)(nil)
	_ ports.PasswordHasher = (*mocks.MockPasswordHasher)(nil)

	_ ports.UserRepository        = (*mocks.MockUserRepository)(nil)
	_ ports.CooperationRepository = (*mocks.MockCooperationRepository)(nil)
	_ ports.ContactRepository     = (*mocks.MockContactRepository)(nil)
	_ ports.InvitationRepository  = (*mocks.MockInvitationRepository)(nil)
	_ ports.NewsRepository        = (*mocks.MockNewsRepository)(nil)

	_ ports.UserService        = (*mocks.MockUserService)(nil)
	_ ports.CooperationService = (*mocks.MockCooperationService)(nil)
	_ ports.ContactService     = (*mocks.MockContactService)(nil)
	_ ports.InvitationService  = (*mocks.MockInvitationService)(nil)
	_ ports.NewsService        = (*mocks.MockNewsService)(nil)
)
