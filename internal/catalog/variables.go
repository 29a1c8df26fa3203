package catalog

// variables lists all system variables in ascending address order.
var variables = []VariableDescriptor{
	{Address: 0x5B00, Size: 0x10, Flags: 0, Name: "SWAP"},
	{Address: 0x5B10, Size: 0x11, Flags: 0, Name: "STOO"},
	{Address: 0x5B21, Size: 0x09, Flags: 0, Name: "YOUNGER"},
	{Address: 0x5B2A, Size: 0x10, Flags: 0, Name: "REGNUOY"},
	{Address: 0x5B3A, Size: 0x18, Flags: 0, Name: "ONERR"},
	{Address: 0x5B52, Size: 0x02, Flags: 0, Name: "OLDHL"},
	{Address: 0x5B54, Size: 0x02, Flags: 0, Name: "OLDBC"},
	{Address: 0x5B56, Size: 0x02, Flags: 0, Name: "OLDAF"},
	{Address: 0x5B58, Size: 0x01, Flags: 0, Name: "CACHEBNK"},
	{Address: 0x5B59, Size: 0x01, Flags: 0, Name: "RESERVED"},
	{Address: 0x5B5A, Size: 0x02, Flags: FlagPointer, Name: "RETADDR"},
	{Address: 0x5B5C, Size: 0x01, Flags: 0, Name: "BANKM"},
	{Address: 0x5B5D, Size: 0x01, Flags: 0, Name: "RAMRST"},
	{Address: 0x5B5E, Size: 0x01, Flags: 0, Name: "RAMERR"},
	{Address: 0x5B5F, Size: 0x01, Flags: 0, Name: "INKL"},
	{Address: 0x5B60, Size: 0x01, Flags: 0, Name: "INK2"},
	{Address: 0x5B61, Size: 0x01, Flags: 0, Name: "ATTRULA"},
	{Address: 0x5B62, Size: 0x01, Flags: 0, Name: "ATTRRHR"},
	{Address: 0x5B63, Size: 0x01, Flags: 0, Name: "ATTRRHC"},
	{Address: 0x5B64, Size: 0x01, Flags: 0, Name: "INKMASK"},
	{Address: 0x5B65, Size: 0x01, Flags: 0, Name: "LSBANK"},
	{Address: 0x5B66, Size: 0x01, Flags: 0, Name: "FLAGS3"},
	{Address: 0x5B67, Size: 0x01, Flags: 0, Name: "BANK678"},
	{Address: 0x5B68, Size: 0x01, Flags: 0, Name: "FLAGN"},
	{Address: 0x5B69, Size: 0x01, Flags: 0, Name: "MAXBNK"},
	{Address: 0x5B6A, Size: 0x02, Flags: 0, Name: "OLDSP"},
	{Address: 0x5B6C, Size: 0x02, Flags: FlagPointer, Name: "SYNRET"},
	{Address: 0x5B6E, Size: 0x05, Flags: 0, Name: "LASTV"},
	{Address: 0x5B73, Size: 0x01, Flags: 0, Name: "TILEBNKL"},
	{Address: 0x5B74, Size: 0x01, Flags: 0, Name: "TILEML"},
	{Address: 0x5B75, Size: 0x01, Flags: 0, Name: "TILEBNK2"},
	{Address: 0x5B76, Size: 0x01, Flags: 0, Name: "TILEM2"},
	{Address: 0x5B77, Size: 0x01, Flags: 0, Name: "NXTBNK"},
	{Address: 0x5B78, Size: 0x01, Flags: 0, Name: "DATABNK"},
	{Address: 0x5B79, Size: 0x01, Flags: 0, Name: "LODDRV"},
	{Address: 0x5B7A, Size: 0x01, Flags: 0, Name: "SAVDRV"},
	{Address: 0x5B7B, Size: 0x01, Flags: 0, Name: "L2SOFT"},
	{Address: 0x5B7C, Size: 0x02, Flags: 0, Name: "TILEWL"},
	{Address: 0x5B7E, Size: 0x02, Flags: 0, Name: "TILEWL"},
	{Address: 0x5B80, Size: 0x02, Flags: 0, Name: "TILEOFFL"},
	{Address: 0x5B82, Size: 0x02, Flags: 0, Name: "TILEOFF2"},
	{Address: 0x5B84, Size: 0x02, Flags: 0, Name: "COORDSX"},
	{Address: 0x5B86, Size: 0x02, Flags: 0, Name: "COORDSY"},
	{Address: 0x5B88, Size: 0x01, Flags: 0, Name: "PAPERL"},
	{Address: 0x5B89, Size: 0x01, Flags: 0, Name: "PAPER2"},
	{Address: 0x5B8A, Size: 0x75, Flags: 0, Name: "TMPVARS"},
	{Address: 0x5BFF, Size: 0x01, Flags: 0, Name: "TSTACK"},
	{Address: 0x5C00, Size: 0x08, Flags: 0, Name: "KSTATE"},
	{Address: 0x5C08, Size: 0x01, Flags: 0, Name: "LASTK"},
	{Address: 0x5C09, Size: 0x01, Flags: 0, Name: "REPDEL"},
	{Address: 0x5C0A, Size: 0x01, Flags: 0, Name: "REPPER"},
	{Address: 0x5C0B, Size: 0x02, Flags: FlagPointer, Name: "RETVARS"},
	{Address: 0x5C0D, Size: 0x01, Flags: 0, Name: "K_DATA"},
	{Address: 0x5C0E, Size: 0x01, Flags: 0, Name: "TVDATA"},
	{Address: 0x5C10, Size: 0x26, Flags: 0, Name: "STRMS"},
	{Address: 0x5C36, Size: 0x02, Flags: FlagPointer, Name: "CHARS"},
	{Address: 0x5C38, Size: 0x01, Flags: 0, Name: "RASP"},
	{Address: 0x5C39, Size: 0x01, Flags: 0, Name: "PIP"},
	{Address: 0x5C3A, Size: 0x01, Flags: 0, Name: "ERRNR"},
	{Address: 0x5C3B, Size: 0x01, Flags: 0, Name: "FLAGS"},
	{Address: 0x5C3C, Size: 0x01, Flags: 0, Name: "TVFLAG"},
	{Address: 0x5C3D, Size: 0x02, Flags: FlagPointer, Name: "ERRSP"},
	{Address: 0x5C3F, Size: 0x02, Flags: 0, Name: "RESERVED"},
	{Address: 0x5C41, Size: 0x01, Flags: 0, Name: "MODE"},
	{Address: 0x5C42, Size: 0x02, Flags: 0, Name: "NEWPPC"},
	{Address: 0x5C44, Size: 0x01, Flags: 0, Name: "RESERVED"},
	{Address: 0x5C45, Size: 0x02, Flags: 0, Name: "PPC"},
	{Address: 0x5C47, Size: 0x01, Flags: 0, Name: "SUBPPC"},
	{Address: 0x5C48, Size: 0x01, Flags: 0, Name: "BORDCR"},
	{Address: 0x5C49, Size: 0x02, Flags: 0, Name: "E_PPC"},
	{Address: 0x5C4B, Size: 0x02, Flags: FlagPointer, Name: "VARS"},
	{Address: 0x5C4D, Size: 0x02, Flags: FlagPointer, Name: "DEST"},
	{Address: 0x5C4F, Size: 0x02, Flags: FlagPointer, Name: "CHANS"},
	{Address: 0x5C51, Size: 0x02, Flags: FlagPointer, Name: "CURCHL"},
	{Address: 0x5C53, Size: 0x02, Flags: FlagPointer, Name: "PROG"},
	{Address: 0x5C55, Size: 0x02, Flags: FlagPointer, Name: "NXTLIN"},
	{Address: 0x5C57, Size: 0x02, Flags: FlagPointer, Name: "DATADD"},
	{Address: 0x5C59, Size: 0x02, Flags: FlagPointer, Name: "E_LINE"},
	{Address: 0x5C5B, Size: 0x02, Flags: FlagPointer, Name: "CUR"},
	{Address: 0x5C5D, Size: 0x02, Flags: FlagPointer, Name: "CH_ADD"},
	{Address: 0x5C5F, Size: 0x02, Flags: FlagPointer, Name: "X_PTR"},
	{Address: 0x5C61, Size: 0x02, Flags: FlagPointer, Name: "WORKSP"},
	{Address: 0x5C63, Size: 0x02, Flags: FlagPointer, Name: "STKBOT"},
	{Address: 0x5C65, Size: 0x02, Flags: FlagPointer, Name: "STKEND"},
	{Address: 0x5C67, Size: 0x02, Flags: 0, Name: "BREG"},
	{Address: 0x5C68, Size: 0x02, Flags: FlagPointer, Name: "MEM"},
	{Address: 0x5C6A, Size: 0x01, Flags: 0, Name: "FLAGS2"},
	{Address: 0x5C6B, Size: 0x01, Flags: 0, Name: "DF_SZ"},
	{Address: 0x5C6C, Size: 0x02, Flags: 0, Name: "RESERVED"},
	{Address: 0x5C6E, Size: 0x02, Flags: 0, Name: "OLDPPC"},
	{Address: 0x5C70, Size: 0x01, Flags: 0, Name: "OSPPC"},
	{Address: 0x5C71, Size: 0x01, Flags: 0, Name: "FLAGX"},
	{Address: 0x5C72, Size: 0x02, Flags: 0, Name: "STRLEN"},
	{Address: 0x5C74, Size: 0x02, Flags: FlagPointer, Name: "T_ADDR"},
	{Address: 0x5C76, Size: 0x02, Flags: 0, Name: "SEED"},
	{Address: 0x5C78, Size: 0x03, Flags: 0, Name: "FRAMES"},
	{Address: 0x5C7B, Size: 0x02, Flags: FlagPointer, Name: "UDG"},
	{Address: 0x5C7D, Size: 0x02, Flags: 0, Name: "COORDS"},
	{Address: 0x5C7F, Size: 0x01, Flags: 0, Name: "GMODE"},
	{Address: 0x5C80, Size: 0x01, Flags: FlagPointer, Name: "PRCC"},
	{Address: 0x5C81, Size: 0x01, Flags: 0, Name: "STIMEOUT"},
	{Address: 0x5C82, Size: 0x02, Flags: 0, Name: "ECHO_E"},
	{Address: 0x5C84, Size: 0x02, Flags: FlagPointer, Name: "DF_CC"},
	{Address: 0x5C86, Size: 0x02, Flags: FlagPointer, Name: "DF_CCL"},
	{Address: 0x5C88, Size: 0x02, Flags: 0, Name: "S_POSN"},
	{Address: 0x5C8A, Size: 0x02, Flags: 0, Name: "SPOSNL"},
	{Address: 0x5C8C, Size: 0x01, Flags: 0, Name: "SCR_CT"},
	{Address: 0x5C8D, Size: 0x01, Flags: 0, Name: "ATTR_P"},
	{Address: 0x5C8E, Size: 0x01, Flags: 0, Name: "MASK_P"},
	{Address: 0x5C8F, Size: 0x01, Flags: 0, Name: "ATTR_T"},
	{Address: 0x5C90, Size: 0x01, Flags: 0, Name: "MASK_T"},
	{Address: 0x5C91, Size: 0x01, Flags: 0, Name: "P_FLAG"},
	{Address: 0x5C92, Size: 0x1E, Flags: 0, Name: "MEMBOT"},
	{Address: 0x5CB0, Size: 0x02, Flags: 0, Name: "RESERVED"},
	{Address: 0x5CB2, Size: 0x02, Flags: FlagPointer, Name: "RAMTOP"},
	{Address: 0x5CB4, Size: 0x02, Flags: FlagPointer, Name: "P_RAMT"},
}
