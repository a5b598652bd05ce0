package memory

import (
	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	user     *userRepository
	image    *imageRepository
	message  *messageRepository
	yearbook *yearbookRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		user:     newUserRepository(),
		image:    newImageRepository(),
		message:  newMessageRepository(),
		yearbook: newYearbookRepository(),
	}
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Image() interfaces.ImageRepository {
	return m.image
}

func (m *Memory) Message() interfaces.MessageRepository {
	return m.message
}

func (m *Memory) Yearbook() interfaces.YearbookRepository {
	return m.yearbook
}

func (m *Memory) Close() error {
	return nil
}
