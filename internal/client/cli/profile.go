package cli

import "context"

// Profile prints the profile account list.
func (a *App) Profile(ctx context.Context) error {
	list := a.profile.List()
	if len(list) == 0 {
		a.println("No accounts.")
		return nil
	}
	for _, acc := range list {
		a.printf("#%d  %s <%s>\n", acc.ID, acc.Name, acc.Email)
	}
	return nil
}

func (a *App) AddAccount(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	acc, err := a.profile.Add(name, email)
	if err != nil {
		return err
	}
	a.printf("Account #%d added.\n", acc.ID)
	return nil
}

// DeleteAccount removes a profile account after confirmation. Unknown ids are
// reported and otherwise ignored.
func (a *App) DeleteAccount(ctx context.Context, args []string) error {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		v, err := getSimpleText(a.reader, "Enter account id", a.out)
		if err != nil {
			return err
		}
		raw = v
	}
	id, err := parseID(raw, "Please enter a valid account id.")
	if err != nil {
		return err
	}

	ok, err := confirm(a.reader, a.out, "Are you sure you want to delete this account?")
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}

	if a.profile.Delete(id) {
		a.printf("Account #%d deleted.\n", id)
	} else {
		a.printf("No account with id %d.\n", id)
	}
	return nil
}
