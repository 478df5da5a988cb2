package wizard

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/gofrs/flock"
)

// Словарь стандартных имен параметров captive-портала по умолчанию.
// На эти имена маппятся параметры, обнаруженные в логах вендоров.
var defaultStandardParameters = []string{
	"client_ip",
	"client_mac",
	"ap_mac",
	"ssid",
	"nas_id",
	"original_url",
}

// StandardParameters хранит редактируемый словарь стандартных параметров.
// Словарь сохраняется в JSON-файл; файл защищен от конкурентного доступа
// блокировкой, так как с ним могут работать несколько копий клиента.
type StandardParameters struct {
	path     string
	fileLock *flock.Flock
	names    []string
}

// NewStandardParameters загружает словарь из файла или создает словарь
// по умолчанию, если файла еще нет.
func NewStandardParameters(path string) (*StandardParameters, error) {
	p := &StandardParameters{
		path:     path,
		fileLock: flock.New(path + ".lock"),
	}
	if err := p.load(); err != nil {
		return nil, err
	}
	return p, nil
}

// Names возвращает копию текущего списка параметров.
func (p *StandardParameters) Names() []string {
	return slices.Clone(p.names)
}

// Add добавляет имя в словарь. Дубликаты молча игнорируются.
func (p *StandardParameters) Add(name string) error {
	if name == "" || slices.Contains(p.names, name) {
		return nil
	}
	p.names = append(p.names, name)
	return p.save()
}

// Remove удаляет имя из словаря.
func (p *StandardParameters) Remove(name string) error {
	idx := slices.Index(p.names, name)
	if idx < 0 {
		return nil
	}
	p.names = slices.Delete(p.names, idx, idx+1)
	return p.save()
}

// Update заменяет имя в словаре, сохраняя его позицию.
// Если новое имя уже есть, старое просто удаляется.
func (p *StandardParameters) Update(oldName, newName string) error {
	idx := slices.Index(p.names, oldName)
	if idx < 0 || newName == "" {
		return nil
	}
	if slices.Contains(p.names, newName) {
		p.names = slices.Delete(p.names, idx, idx+1)
	} else {
		p.names[idx] = newName
	}
	return p.save()
}

// ResetToDefault возвращает словарь к списку по умолчанию.
func (p *StandardParameters) ResetToDefault() error {
	p.names = slices.Clone(defaultStandardParameters)
	return p.save()
}

func (p *StandardParameters) load() error {
	if err := p.fileLock.Lock(); err != nil {
		return fmt.Errorf("ошибка блокировки файла словаря: %w", err)
	}
	defer func() {
		_ = p.fileLock.Unlock()
	}()

	raw, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			p.names = slices.Clone(defaultStandardParameters)
			return nil
		}
		return fmt.Errorf("ошибка чтения файла словаря: %w", err)
	}

	var names []string
	if err = json.Unmarshal(raw, &names); err != nil {
		return fmt.Errorf("ошибка разбора файла словаря: %w", err)
	}
	p.names = names
	return nil
}

func (p *StandardParameters) save() error {
	if err := p.fileLock.Lock(); err != nil {
		return fmt.Errorf("ошибка блокировки файла словаря: %w", err)
	}
	defer func() {
		_ = p.fileLock.Unlock()
	}()

	raw, err := json.MarshalIndent(p.names, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации словаря: %w", err)
	}
	if err = os.WriteFile(p.path, raw, 0o600); err != nil {
		return fmt.Errorf("ошибка записи файла словаря: %w", err)
	}
	return nil
}
